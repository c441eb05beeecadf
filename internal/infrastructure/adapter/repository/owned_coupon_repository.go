package repository

import (
	"context"
	"errors"
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// OwnedCouponRepository implements persistence.OwnedCouponRepository using GORM
type OwnedCouponRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewOwnedCouponRepository creates a new OwnedCouponRepository instance
func NewOwnedCouponRepository(db *gorm.DB, logger coreport.Logger) *OwnedCouponRepository {
	return &OwnedCouponRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func ownedModelToEntity(m *model.OwnedCoupon) *entity.OwnedCoupon {
	return &entity.OwnedCoupon{
		ID:           m.ID,
		CouponID:     m.CouponID,
		OwnerID:      m.OwnerID,
		UniqueCode:   m.UniqueCode,
		PurchaseDate: m.PurchaseDate,
		Used:         m.Used,
		ValidatedBy:  m.ValidatedBy,
		ValidatedAt:  m.ValidatedAt,
	}
}

// Create mints an owned coupon. The unique_code index rejects code collisions.
func (r *OwnedCouponRepository) Create(ctx context.Context, owned *entity.OwnedCoupon) error {
	ownedModel := model.OwnedCoupon{
		ID:           owned.ID,
		CouponID:     owned.CouponID,
		OwnerID:      owned.OwnerID,
		UniqueCode:   owned.UniqueCode,
		PurchaseDate: owned.PurchaseDate,
		Used:         owned.Used,
		ValidatedBy:  owned.ValidatedBy,
		ValidatedAt:  owned.ValidatedAt,
	}

	result := r.db.WithContext(ctx).Create(&ownedModel)

	if result.Error != nil {
		mapped := r.errorMapper.MapError(result.Error, EntityTypeOwnedCoupon)
		if errors.Is(mapped, errs.ErrDuplicateCode) {
			r.logger.Warn("Redemption code collision on mint", map[string]any{
				"owned_coupon_id": owned.ID,
			})
			return mapped
		}
		r.logger.Error("Database error when minting owned coupon", map[string]any{
			"owned_coupon_id": owned.ID,
			"error":           result.Error.Error(),
		})
		return mapped
	}

	return nil
}

// GetByCode looks up an owned coupon by its redemption code across all owners
func (r *OwnedCouponRepository) GetByCode(ctx context.Context, code string) (*entity.OwnedCoupon, error) {
	var ownedModel model.OwnedCoupon
	result := r.db.WithContext(ctx).First(&ownedModel, "unique_code = ?", code)

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Error("Database error when looking up redemption code", map[string]any{
				"error": result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapError(result.Error, EntityTypeOwnedCoupon)
	}

	return ownedModelToEntity(&ownedModel), nil
}

// MarkUsed flips an owned coupon to used with a conditional write.
// The WHERE used = false guard means exactly one concurrent validator
// observes a row change; everyone else gets false back.
func (r *OwnedCouponRepository) MarkUsed(ctx context.Context, id, validatorID string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.OwnedCoupon{}).
		Where("id = ? AND used = ?", id, false).
		Updates(map[string]interface{}{
			"used":         true,
			"validated_by": validatorID,
			"validated_at": at,
		})

	if result.Error != nil {
		r.logger.Error("Database error when marking coupon used", map[string]any{
			"owned_coupon_id": id,
			"error":           result.Error.Error(),
		})
		return false, r.errorMapper.MapError(result.Error, EntityTypeOwnedCoupon)
	}

	return result.RowsAffected == 1, nil
}

// ListByOwner returns a user's owned coupons, newest purchase first
func (r *OwnedCouponRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.OwnedCoupon, error) {
	var ownedModels []model.OwnedCoupon
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("purchase_date DESC").
		Find(&ownedModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing owned coupons", map[string]any{
			"owner_id": ownerID,
			"error":    result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, EntityTypeOwnedCoupon)
	}

	owned := make([]*entity.OwnedCoupon, 0, len(ownedModels))
	for i := range ownedModels {
		owned = append(owned, ownedModelToEntity(&ownedModels[i]))
	}
	return owned, nil
}
