package recommendation

import (
	"context"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// DefaultListLimit bounds an unpaginated board listing
const DefaultListLimit = 50

// ListRecommendations returns the board, newest first, each entry carrying
// the average of its comment ratings. The submitter's own rating stays out
// of the average.
func (s *Service) ListRecommendations(ctx context.Context, serviceType string, limit int) ([]*usecase.RecommendationView, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	recs := s.uow.GetRecommendationRepository(ctx)

	items, err := recs.List(ctx, serviceType, limit)
	if err != nil {
		return nil, err
	}

	views := make([]*usecase.RecommendationView, 0, len(items))
	for _, rec := range items {
		comments, err := recs.ListComments(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, &usecase.RecommendationView{
			Recommendation: rec,
			AverageRating:  entity.AverageRating(comments),
			CommentCount:   len(comments),
		})
	}
	return views, nil
}

// ListServiceTypes returns the service taxonomy ordered by name
func (s *Service) ListServiceTypes(ctx context.Context) ([]string, error) {
	recs := s.uow.GetRecommendationRepository(ctx)
	return recs.ListServiceTypes(ctx)
}
