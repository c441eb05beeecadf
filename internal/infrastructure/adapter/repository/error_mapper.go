package repository

import (
	"errors"
	"fmt"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType selects which not-found and duplicate sentinels MapError returns
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeCoupon represents the catalog coupon entity
	EntityTypeCoupon EntityType = "coupon"
	// EntityTypeOwnedCoupon represents the owned coupon entity
	EntityTypeOwnedCoupon EntityType = "owned_coupon"
	// EntityTypeRecommendation represents the recommendation entity
	EntityTypeRecommendation EntityType = "recommendation"
	// EntityTypeLedger represents the points ledger entry
	EntityTypeLedger EntityType = "ledger"
)

// ErrorMapper translates database errors into domain errors. All
// repositories share it so the driver's error vocabulary is interpreted
// in one place.
type ErrorMapper struct {
	classifier *ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: NewErrorClassifier()}
}

// NotFound returns the entity's not-found sentinel. Owned coupons are
// looked up by redemption code, so their absence reads as an invalid code.
func (m *ErrorMapper) NotFound(entityType EntityType) error {
	switch entityType {
	case EntityTypeUser:
		return errs.ErrUserNotFound
	case EntityTypeCoupon:
		return errs.ErrCouponNotFound
	case EntityTypeOwnedCoupon:
		return errs.ErrCouponCodeInvalid
	case EntityTypeRecommendation:
		return errs.ErrRecommendationNotFound
	default:
		return errs.ErrNotFound
	}
}

// MapError maps a database error onto the domain error the entity's
// callers handle
func (m *ErrorMapper) MapError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.NotFound(entityType)
	}

	switch {
	case m.classifier.IsLockError(err):
		return errs.ErrConcurrentModification

	case m.classifier.IsDuplicateKeyError(err):
		switch entityType {
		case EntityTypeUser:
			return errs.ErrDuplicateUser
		case EntityTypeOwnedCoupon:
			return errs.ErrDuplicateCode
		default:
			return errs.ErrConstraintViolation
		}

	case m.classifier.IsConstraintError(err):
		return errs.ErrConstraintViolation

	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}
