package entity

import (
	"time"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
)

// OwnedCoupon is a user's purchased instance of a catalog Coupon.
// It is minted once at purchase time with used=false and transitions to
// used=true exactly once, at validation time. used=true is terminal.
type OwnedCoupon struct {
	ID           string     // Unique identifier for the owned instance
	CouponID     string     // Catalog entry this instance was minted from
	OwnerID      string     // User who purchased the coupon
	UniqueCode   string     // Globally unique single-use redemption code
	PurchaseDate time.Time  // When the purchase transaction committed
	Used         bool       // Whether the code has been consumed
	ValidatedBy  string     // Actor who consumed the code, empty until used
	ValidatedAt  *time.Time // When the code was consumed, nil until used
}

// NewOwnedCoupon mints an owned coupon at purchase time
func NewOwnedCoupon(id, couponID, ownerID, uniqueCode string, timeProvider coreport.TimeProvider) (*OwnedCoupon, error) {
	if id == "" || uniqueCode == "" {
		return nil, errs.ErrCouponCodeInvalid
	}
	if couponID == "" {
		return nil, errs.ErrInvalidCouponID
	}
	if ownerID == "" {
		return nil, errs.ErrInvalidUserID
	}

	return &OwnedCoupon{
		ID:           id,
		CouponID:     couponID,
		OwnerID:      ownerID,
		UniqueCode:   uniqueCode,
		PurchaseDate: timeProvider.Now(),
		Used:         false,
	}, nil
}

// MarkUsed flips the coupon to its terminal used state.
// Returns ErrCouponAlreadyUsed if the code was consumed before; the flip
// never reverses.
func (o *OwnedCoupon) MarkUsed(validatorID string, timeProvider coreport.TimeProvider) error {
	if o.Used {
		return errs.ErrCouponAlreadyUsed
	}
	if validatorID == "" {
		return errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	o.Used = true
	o.ValidatedBy = validatorID
	o.ValidatedAt = &now
	return nil
}
