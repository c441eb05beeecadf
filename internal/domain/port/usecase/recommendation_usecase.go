package usecase

import (
	"context"
	"io"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// SubmitRecommendationInput carries the fields of a new recommendation
type SubmitRecommendationInput struct {
	ProviderName   string
	Company        string
	ServiceType    string
	NewServiceType string // Non-empty when the submitter names a type not in the taxonomy
	Contact        string
	Description    string
	Rating         int
	CardImageURL   string
	ServedFor      string
}

// SubmitRecommendationResult reports the stored recommendation and the
// points credited for it
type SubmitRecommendationResult struct {
	Recommendation *entity.Recommendation
	PointsAwarded  int64
	ResultBalance  int64
}

// AddCommentResult reports the stored comment and the points credited for it
type AddCommentResult struct {
	Comment       *entity.Comment
	PointsAwarded int64
	ResultBalance int64
}

// RecommendationView pairs a recommendation with the average of its
// comment ratings
type RecommendationView struct {
	Recommendation *entity.Recommendation
	AverageRating  float64
	CommentCount   int
}

// RecommendationUseCase defines the point-earning side of the loyalty
// ledger: submitting recommendations and rating them
type RecommendationUseCase interface {
	// SubmitRecommendation stores the recommendation, credits the submitter
	// atomically with a ledger entry, and fires the best-effort webhook
	SubmitRecommendation(ctx context.Context, userID string, input SubmitRecommendationInput) (*SubmitRecommendationResult, error)

	// ListRecommendations returns recommendations with comment rating
	// averages, optionally filtered by service type
	ListRecommendations(ctx context.Context, serviceType string, limit int) ([]*RecommendationView, error)

	// AddComment stores a rated comment and credits the author atomically
	// with a ledger entry
	AddComment(ctx context.Context, userID, recommendationID, content string, rating int) (*AddCommentResult, error)

	// ListComments returns a recommendation's comments, oldest first
	ListComments(ctx context.Context, recommendationID string) ([]*entity.Comment, error)

	// ListServiceTypes returns the service taxonomy ordered by name
	ListServiceTypes(ctx context.Context) ([]string, error)

	// UploadCardImage stores a business card image in the blob store and
	// returns its durable URL
	UploadCardImage(ctx context.Context, userID, filename string, content io.Reader, contentType string) (string, error)
}
