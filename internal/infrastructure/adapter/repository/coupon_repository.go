package repository

import (
	"context"
	"errors"
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CouponRepository implements persistence.CouponRepository using GORM
type CouponRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewCouponRepository creates a new CouponRepository instance
func NewCouponRepository(db *gorm.DB, logger coreport.Logger) *CouponRepository {
	return &CouponRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func couponModelToEntity(m *model.Coupon) *entity.Coupon {
	return &entity.Coupon{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Cost:           m.Cost,
		ExpirationDate: m.ExpirationDate,
		CreatedAt:      m.CreatedAt,
	}
}

// GetByID retrieves a catalog entry by id
func (r *CouponRepository) GetByID(ctx context.Context, id string) (*entity.Coupon, error) {
	var couponModel model.Coupon
	result := r.db.WithContext(ctx).First(&couponModel, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Coupon not found", map[string]any{
				"coupon_id": id,
			})
		} else {
			r.logger.Error("Database error when getting coupon", map[string]any{
				"coupon_id": id,
				"error":     result.Error.Error(),
			})
		}
		return nil, r.errorMapper.MapError(result.Error, EntityTypeCoupon)
	}

	return couponModelToEntity(&couponModel), nil
}

// ListAvailable returns unexpired catalog entries, expiring soonest first
func (r *CouponRepository) ListAvailable(ctx context.Context, now time.Time) ([]*entity.Coupon, error) {
	var couponModels []model.Coupon
	result := r.db.WithContext(ctx).
		Where("expiration_date > ?", now).
		Order("expiration_date ASC").
		Find(&couponModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing coupons", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, EntityTypeCoupon)
	}

	coupons := make([]*entity.Coupon, 0, len(couponModels))
	for i := range couponModels {
		coupons = append(coupons, couponModelToEntity(&couponModels[i]))
	}
	return coupons, nil
}

// Create inserts a catalog entry
func (r *CouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponModel := model.Coupon{
		ID:             coupon.ID,
		Title:          coupon.Title,
		Description:    coupon.Description,
		Cost:           coupon.Cost,
		ExpirationDate: coupon.ExpirationDate,
		CreatedAt:      coupon.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&couponModel)

	if result.Error != nil {
		r.logger.Error("Database error when creating coupon", map[string]any{
			"coupon_id": coupon.ID,
			"error":     result.Error.Error(),
		})
		return r.errorMapper.MapError(result.Error, EntityTypeCoupon)
	}

	r.logger.Info("Coupon catalog entry created", map[string]any{
		"coupon_id": coupon.ID,
		"title":     coupon.Title,
		"cost":      coupon.Cost,
	})
	return nil
}
