package dto

import (
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// SubmitRecommendationRequest carries a new service provider recommendation
type SubmitRecommendationRequest struct {
	ProviderName   string `json:"providerName" binding:"required"`
	Company        string `json:"company" binding:"required"`
	ServiceType    string `json:"serviceType"`
	NewServiceType string `json:"newServiceType"`
	Contact        string `json:"contact" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Rating         int    `json:"rating" binding:"required,min=1,max=5"`
	CardImageURL   string `json:"cardImageUrl"`
	ServedFor      string `json:"servedFor"`
}

// RecommendationResponse represents a recommendation in the feed
type RecommendationResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	ProviderName  string    `json:"providerName"`
	Company       string    `json:"company"`
	ServiceType   string    `json:"serviceType"`
	Contact       string    `json:"contact"`
	Description   string    `json:"description"`
	Rating        int       `json:"rating"`
	CardImageURL  string    `json:"cardImageUrl,omitempty"`
	ServedFor     string    `json:"servedFor,omitempty"`
	AverageRating float64   `json:"averageRating"`
	CommentCount  int       `json:"commentCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewRecommendationResponse maps a recommendation view to its API representation
func NewRecommendationResponse(view *usecase.RecommendationView) RecommendationResponse {
	rec := view.Recommendation
	return RecommendationResponse{
		ID:            rec.ID,
		UserID:        rec.UserID,
		UserName:      rec.UserName,
		ProviderName:  rec.ProviderName,
		Company:       rec.Company,
		ServiceType:   rec.ServiceType,
		Contact:       rec.Contact,
		Description:   rec.Description,
		Rating:        rec.Rating,
		CardImageURL:  rec.CardImageURL,
		ServedFor:     rec.ServedFor,
		AverageRating: view.AverageRating,
		CommentCount:  view.CommentCount,
		CreatedAt:     rec.CreatedAt,
	}
}

// SubmitRecommendationResponse reports the stored recommendation and the
// points credited for it
type SubmitRecommendationResponse struct {
	ID            string `json:"id"`
	PointsAwarded int64  `json:"pointsAwarded"`
	ResultBalance int64  `json:"resultBalance"`
}

// AddCommentRequest carries a rated comment on a recommendation
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// CommentResponse represents one comment on a recommendation
type CommentResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewCommentResponse maps a comment entity to its API representation
func NewCommentResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		Rating:     comment.Rating,
		CreatedAt:  comment.CreatedAt,
	}
}

// AddCommentResponse reports the stored comment and the points credited for it
type AddCommentResponse struct {
	Comment       CommentResponse `json:"comment"`
	PointsAwarded int64           `json:"pointsAwarded"`
	ResultBalance int64           `json:"resultBalance"`
}

// CardUploadResponse reports the durable URL of an uploaded card image
type CardUploadResponse struct {
	URL string `json:"url"`
}
