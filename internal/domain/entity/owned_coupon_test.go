package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
)

func TestNewOwnedCoupon(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid mint", func(t *testing.T) {
		owned, err := NewOwnedCoupon("oc-1", "cp-1", "uid-1", "code-abc", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "oc-1", owned.ID)
		assert.Equal(t, "cp-1", owned.CouponID)
		assert.Equal(t, "uid-1", owned.OwnerID)
		assert.Equal(t, "code-abc", owned.UniqueCode)
		assert.Equal(t, fixedTime, owned.PurchaseDate)
		assert.False(t, owned.Used)
		assert.Empty(t, owned.ValidatedBy)
		assert.Nil(t, owned.ValidatedAt)
	})

	t.Run("Missing fields are rejected", func(t *testing.T) {
		_, err := NewOwnedCoupon("oc-1", "", "uid-1", "code-abc", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidCouponID)

		_, err = NewOwnedCoupon("oc-1", "cp-1", "", "code-abc", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewOwnedCoupon("oc-1", "cp-1", "uid-1", "", mockTime)
		assert.Error(t, err)
	})
}

func TestOwnedCouponMarkUsed(t *testing.T) {
	purchaseTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	validationTime := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)

	t.Run("First validation flips the coupon exactly once", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(purchaseTime).Once()

		owned, _ := NewOwnedCoupon("oc-1", "cp-1", "uid-1", "code-abc", mockTime)

		mockTime.On("Now").Return(validationTime).Once()
		require.NoError(t, owned.MarkUsed("clerk-9", mockTime))

		assert.True(t, owned.Used)
		assert.Equal(t, "clerk-9", owned.ValidatedBy)
		require.NotNil(t, owned.ValidatedAt)
		assert.Equal(t, validationTime, *owned.ValidatedAt)
	})

	t.Run("Second validation is rejected without mutation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(purchaseTime)

		owned, _ := NewOwnedCoupon("oc-1", "cp-1", "uid-1", "code-abc", mockTime)
		require.NoError(t, owned.MarkUsed("clerk-9", mockTime))

		err := owned.MarkUsed("clerk-10", mockTime)
		assert.ErrorIs(t, err, errs.ErrCouponAlreadyUsed)
		assert.Equal(t, "clerk-9", owned.ValidatedBy)
	})

	t.Run("Validator id is required", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(purchaseTime)

		owned, _ := NewOwnedCoupon("oc-1", "cp-1", "uid-1", "code-abc", mockTime)

		err := owned.MarkUsed("", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.False(t, owned.Used)
	})
}
