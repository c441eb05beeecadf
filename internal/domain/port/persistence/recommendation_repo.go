package persistence

import (
	"context"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// RecommendationRepository manages service provider recommendations and
// their rated comments
type RecommendationRepository interface {
	// Create inserts a recommendation
	Create(ctx context.Context, rec *entity.Recommendation) error

	// GetByID retrieves a recommendation by id
	//
	// Possible errors:
	// - ErrRecommendationNotFound: If no recommendation has the given id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Recommendation, error)

	// List returns recommendations, newest first, optionally filtered by
	// service type; serviceType == "" means no filter
	List(ctx context.Context, serviceType string, limit int) ([]*entity.Recommendation, error)

	// CreateComment inserts a rated comment on a recommendation
	//
	// Possible errors:
	// - ErrRecommendationNotFound: If the referenced recommendation is gone
	// - ErrDatabaseConnection: If database connection fails
	CreateComment(ctx context.Context, comment *entity.Comment) error

	// ListComments returns a recommendation's comments, oldest first
	ListComments(ctx context.Context, recommendationID string) ([]*entity.Comment, error)

	// EnsureServiceType inserts a service taxonomy entry if it does not
	// exist yet; submitting a recommendation may name a new type inline
	EnsureServiceType(ctx context.Context, name string) error

	// ListServiceTypes returns all service taxonomy entries ordered by name
	ListServiceTypes(ctx context.Context) ([]string, error)
}
