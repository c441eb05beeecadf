package entity

import (
	"time"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
)

// Recommendation is a resident's endorsement of a local service provider.
// Submitting one earns the resident PointsForRecommendation.
type Recommendation struct {
	ID           string    // Unique identifier
	UserID       string    // Resident who submitted the recommendation
	UserName     string    // Display name captured at submission time
	UserEmail    string    // Email captured at submission time
	ProviderName string    // Name of the recommended person
	Company      string    // Company the provider works for
	ServiceType  string    // Service taxonomy entry, may be created inline
	Contact      string    // Provider phone contact
	Description  string    // Why the provider is recommended
	Rating       int       // Submitter's own rating, 1-5
	CardImageURL string    // Optional business card image, blob store URL
	ServedFor    string    // Whether the service was for the submitter or a neighbor
	CreatedAt    time.Time // When the recommendation was submitted
}

// NewRecommendation creates a recommendation with basic validation
func NewRecommendation(
	id, userID, providerName, company, serviceType, contact, description string,
	rating int,
	timeProvider coreport.TimeProvider,
) (*Recommendation, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if id == "" || providerName == "" || company == "" || serviceType == "" || contact == "" || description == "" {
		return nil, errs.ErrInvalidRequest
	}
	if rating < 1 || rating > 5 {
		return nil, errs.ErrInvalidRating
	}

	return &Recommendation{
		ID:           id,
		UserID:       userID,
		ProviderName: providerName,
		Company:      company,
		ServiceType:  serviceType,
		Contact:      contact,
		Description:  description,
		Rating:       rating,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// Comment is a rated remark on a recommendation. Posting one earns the
// author PointsForComment.
type Comment struct {
	ID               string    // Unique identifier
	RecommendationID string    // Recommendation the comment belongs to
	AuthorID         string    // Resident who wrote the comment
	AuthorName       string    // Display name captured at submission time
	Content          string    // Comment body
	Rating           int       // Author's rating of the recommendation, 1-5
	CreatedAt        time.Time // When the comment was posted
}

// NewComment creates a comment with basic validation
func NewComment(id, recommendationID, authorID, content string, rating int, timeProvider coreport.TimeProvider) (*Comment, error) {
	if authorID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if id == "" || recommendationID == "" || content == "" {
		return nil, errs.ErrInvalidRequest
	}
	if rating < 1 || rating > 5 {
		return nil, errs.ErrInvalidRating
	}

	return &Comment{
		ID:               id,
		RecommendationID: recommendationID,
		AuthorID:         authorID,
		Content:          content,
		Rating:           rating,
		CreatedAt:        timeProvider.Now(),
	}, nil
}

// AverageRating computes the mean of the comment ratings on a recommendation.
// The submitter's own rating is reported separately and deliberately excluded,
// so independent reviews are never mixed with the submitter's self-assessment.
func AverageRating(comments []*Comment) float64 {
	if len(comments) == 0 {
		return 0
	}
	var total int
	for _, c := range comments {
		total += c.Rating
	}
	return float64(total) / float64(len(comments))
}
