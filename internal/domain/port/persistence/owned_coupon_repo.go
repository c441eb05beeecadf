package persistence

import (
	"context"
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// OwnedCouponRepository manages purchased coupon instances and their
// single-use redemption codes
type OwnedCouponRepository interface {
	// Create mints an owned coupon. The unique code carries a global
	// uniqueness constraint so redemption can look it up without knowing
	// the owner.
	//
	// Possible errors:
	// - ErrDuplicateCode: If the redemption code collides with an existing one
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, owned *entity.OwnedCoupon) error

	// GetByCode looks up an owned coupon by its redemption code across all
	// owners. The lookup is indexed; latency does not depend on user count.
	//
	// Possible errors:
	// - ErrCouponCodeInvalid: If no owned coupon carries the code
	// - ErrDatabaseConnection: If database connection fails
	GetByCode(ctx context.Context, code string) (*entity.OwnedCoupon, error)

	// MarkUsed flips an owned coupon to used with a conditional write that
	// only succeeds while used is still false. Returns false without error
	// when a concurrent validator won the race; exactly one caller ever
	// observes true.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	MarkUsed(ctx context.Context, id, validatorID string, at time.Time) (bool, error)

	// ListByOwner returns a user's owned coupons, newest purchase first
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.OwnedCoupon, error)
}
