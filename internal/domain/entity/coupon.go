package entity

import (
	"time"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
)

// Coupon represents a catalog offer redeemable for points.
// Catalog entries are created by administrative collaborators and are
// read-only from the purchase and redemption workflows' perspective.
type Coupon struct {
	ID             string    // Unique identifier for the catalog entry
	Title          string    // Offer title shown on purchase and validation
	Description    string    // Offer description
	Cost           int64     // Price in points, always positive
	ExpirationDate time.Time // Instant after which the coupon cannot be purchased
	CreatedAt      time.Time // When the catalog entry was created
}

// NewCoupon creates a catalog entry with basic validation
func NewCoupon(id, title, description string, cost int64, expirationDate, now time.Time) (*Coupon, error) {
	if id == "" {
		return nil, errs.ErrInvalidCouponID
	}
	if cost <= 0 {
		return nil, errs.ErrInvalidCouponCost
	}

	return &Coupon{
		ID:             id,
		Title:          title,
		Description:    description,
		Cost:           cost,
		ExpirationDate: expirationDate,
		CreatedAt:      now,
	}, nil
}

// Expired reports whether the coupon's expiration instant has passed
func (c *Coupon) Expired(now time.Time) bool {
	return !c.ExpirationDate.After(now)
}

// Available reports whether the coupon can still be purchased
func (c *Coupon) Available(now time.Time) bool {
	return !c.Expired(now)
}
