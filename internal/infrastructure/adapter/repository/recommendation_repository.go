package repository

import (
	"context"
	"errors"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecommendationRepository implements persistence.RecommendationRepository
// using GORM
type RecommendationRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewRecommendationRepository creates a new RecommendationRepository instance
func NewRecommendationRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RecommendationRepository {
	return &RecommendationRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

func recModelToEntity(m *model.Recommendation) *entity.Recommendation {
	return &entity.Recommendation{
		ID:           m.ID,
		UserID:       m.UserID,
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		ProviderName: m.ProviderName,
		Company:      m.Company,
		ServiceType:  m.ServiceType,
		Contact:      m.Contact,
		Description:  m.Description,
		Rating:       m.Rating,
		CardImageURL: m.CardImageURL,
		ServedFor:    m.ServedFor,
		CreatedAt:    m.CreatedAt,
	}
}

func commentModelToEntity(m *model.Comment) *entity.Comment {
	return &entity.Comment{
		ID:               m.ID,
		RecommendationID: m.RecommendationID,
		AuthorID:         m.AuthorID,
		AuthorName:       m.AuthorName,
		Content:          m.Content,
		Rating:           m.Rating,
		CreatedAt:        m.CreatedAt,
	}
}

// Create inserts a recommendation
func (r *RecommendationRepository) Create(ctx context.Context, rec *entity.Recommendation) error {
	recModel := model.Recommendation{
		ID:           rec.ID,
		UserID:       rec.UserID,
		UserName:     rec.UserName,
		UserEmail:    rec.UserEmail,
		ProviderName: rec.ProviderName,
		Company:      rec.Company,
		ServiceType:  rec.ServiceType,
		Contact:      rec.Contact,
		Description:  rec.Description,
		Rating:       rec.Rating,
		CardImageURL: rec.CardImageURL,
		ServedFor:    rec.ServedFor,
		CreatedAt:    rec.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&recModel)

	if result.Error != nil {
		r.logger.Error("Database error when creating recommendation", map[string]any{
			"recommendation_id": rec.ID,
			"error":             result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, EntityTypeRecommendation)
	}

	return nil
}

// GetByID retrieves a recommendation by id
func (r *RecommendationRepository) GetByID(ctx context.Context, id string) (*entity.Recommendation, error) {
	var recModel model.Recommendation
	result := r.db.WithContext(ctx).First(&recModel, "id = ?", id)

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Error("Database error when getting recommendation", map[string]any{
				"recommendation_id": id,
				"error":             result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapError(result.Error, EntityTypeRecommendation)
	}

	return recModelToEntity(&recModel), nil
}

// List returns recommendations, newest first, optionally filtered by service type
func (r *RecommendationRepository) List(ctx context.Context, serviceType string, limit int) ([]*entity.Recommendation, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var recModels []model.Recommendation
	result := query.Find(&recModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing recommendations", map[string]any{
			"service_type": serviceType,
			"error":        result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, EntityTypeRecommendation)
	}

	recs := make([]*entity.Recommendation, 0, len(recModels))
	for i := range recModels {
		recs = append(recs, recModelToEntity(&recModels[i]))
	}
	return recs, nil
}

// CreateComment inserts a rated comment on a recommendation
func (r *RecommendationRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	commentModel := model.Comment{
		ID:               comment.ID,
		RecommendationID: comment.RecommendationID,
		AuthorID:         comment.AuthorID,
		AuthorName:       comment.AuthorName,
		Content:          comment.Content,
		Rating:           comment.Rating,
		CreatedAt:        comment.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&commentModel)

	if result.Error != nil {
		mapped := r.errorMapper.MapError(result.Error, EntityTypeRecommendation)
		if errors.Is(mapped, errs.ErrConstraintViolation) {
			// the comment foreign key points at the recommendation
			return errs.ErrRecommendationNotFound
		}
		r.logger.Error("Database error when creating comment", map[string]any{
			"comment_id": comment.ID,
			"error":      result.Error.Error(),
		})
		return mapped
	}

	return nil
}

// ListComments returns a recommendation's comments, oldest first
func (r *RecommendationRepository) ListComments(ctx context.Context, recommendationID string) ([]*entity.Comment, error) {
	var commentModels []model.Comment
	result := r.db.WithContext(ctx).
		Where("recommendation_id = ?", recommendationID).
		Order("created_at ASC").
		Find(&commentModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing comments", map[string]any{
			"recommendation_id": recommendationID,
			"error":             result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, EntityTypeRecommendation)
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, commentModelToEntity(&commentModels[i]))
	}
	return comments, nil
}

// EnsureServiceType inserts a taxonomy entry if it does not exist yet
func (r *RecommendationRepository) EnsureServiceType(ctx context.Context, name string) error {
	typeModel := model.ServiceType{
		Name:      name,
		CreatedAt: r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&typeModel)

	if result.Error != nil {
		r.logger.Error("Database error when ensuring service type", map[string]any{
			"service_type": name,
			"error":        result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, EntityTypeRecommendation)
	}

	return nil
}

// ListServiceTypes returns all taxonomy entries ordered by name
func (r *RecommendationRepository) ListServiceTypes(ctx context.Context) ([]string, error) {
	var names []string
	result := r.db.WithContext(ctx).Model(&model.ServiceType{}).
		Order("name ASC").
		Pluck("name", &names)

	if result.Error != nil {
		r.logger.Error("Database error when listing service types", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, EntityTypeRecommendation)
	}

	return names, nil
}
