package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
)

func TestNewCoupon(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(30 * 24 * time.Hour)

	t.Run("Valid coupon creation", func(t *testing.T) {
		coupon, err := NewCoupon("cp-1", "10% na padaria", "Desconto na Padaria Central", 30, expiry, now)

		require.NoError(t, err)
		assert.Equal(t, "cp-1", coupon.ID)
		assert.Equal(t, int64(30), coupon.Cost)
		assert.True(t, coupon.Available(now))
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		coupon, err := NewCoupon("", "title", "desc", 30, expiry, now)

		assert.ErrorIs(t, err, errs.ErrInvalidCouponID)
		assert.Nil(t, coupon)
	})

	t.Run("Non-positive cost should return error", func(t *testing.T) {
		for _, cost := range []int64{0, -10} {
			coupon, err := NewCoupon("cp-1", "title", "desc", cost, expiry, now)
			assert.ErrorIs(t, err, errs.ErrInvalidCouponCost)
			assert.Nil(t, coupon)
		}
	})
}

func TestCouponExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Future expiration is available", func(t *testing.T) {
		coupon, _ := NewCoupon("cp-1", "title", "desc", 30, now.Add(time.Hour), now)
		assert.False(t, coupon.Expired(now))
		assert.True(t, coupon.Available(now))
	})

	t.Run("Past expiration is expired", func(t *testing.T) {
		coupon, _ := NewCoupon("cp-1", "title", "desc", 30, now.Add(-time.Hour), now)
		assert.True(t, coupon.Expired(now))
		assert.False(t, coupon.Available(now))
	})

	t.Run("Expiration instant itself counts as expired", func(t *testing.T) {
		coupon, _ := NewCoupon("cp-1", "title", "desc", 30, now, now)
		assert.True(t, coupon.Expired(now))
	})
}
