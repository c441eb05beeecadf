package persistence

import (
	"context"
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// CouponRepository defines read access to the coupon catalog.
// Catalog entries are written by administrative collaborators; the loyalty
// workflows only ever read them.
type CouponRepository interface {
	// GetByID retrieves a catalog entry by id
	//
	// Possible errors:
	// - ErrCouponNotFound: If no catalog entry has the given id
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Coupon, error)

	// ListAvailable returns catalog entries whose expiration lies after now,
	// ordered by expiration ascending
	ListAvailable(ctx context.Context, now time.Time) ([]*entity.Coupon, error)

	// Create inserts a catalog entry; used by seeding and admin collaborators
	//
	// Possible errors:
	// - ErrConstraintViolation: If an entry with the same id exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, coupon *entity.Coupon) error
}
