package migration

import (
	"context"
	"errors"
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/persistence"
)

// Seed catalog for development environments
var defaultCoupons = []struct {
	id          string
	title       string
	description string
	cost        int64
	validFor    time.Duration
}{
	{"seed-car-wash", "Free car wash", "One wash at the condo garage", 50, 90 * 24 * time.Hour},
	{"seed-gym-month", "One month of gym access", "Full access to the condo gym", 120, 60 * 24 * time.Hour},
	{"seed-party-room", "Party room discount", "20% off a party room booking", 80, 120 * 24 * time.Hour},
}

// CreateDefaultCoupons seeds the coupon catalog with sample offers.
// Existing entries are left untouched.
func CreateDefaultCoupons(ctx context.Context, coupons persistence.CouponRepository, timeProvider coreport.TimeProvider) error {
	now := timeProvider.Now()

	for _, seed := range defaultCoupons {
		if _, err := coupons.GetByID(ctx, seed.id); err == nil {
			continue
		} else if !errors.Is(err, errs.ErrCouponNotFound) {
			return err
		}

		coupon, err := entity.NewCoupon(seed.id, seed.title, seed.description, seed.cost, now.Add(seed.validFor), now)
		if err != nil {
			return err
		}

		if err := coupons.Create(ctx, coupon); err != nil {
			return err
		}
	}

	return nil
}
