package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
)

func TestNewPointsTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Credit entry", func(t *testing.T) {
		entry, err := NewPointsTransaction("uid-1", PointsForRecommendation, "Service recommendation", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(20), entry.Amount)
		assert.True(t, entry.IsCredit())
		assert.False(t, entry.IsDebit())
		assert.Equal(t, fixedTime, entry.CreatedAt)
	})

	t.Run("Debit entry", func(t *testing.T) {
		entry, err := NewPointsTransaction("uid-1", -30, "Coupon purchase: 10% na padaria", mockTime)

		require.NoError(t, err)
		assert.True(t, entry.IsDebit())
		assert.False(t, entry.IsCredit())
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		entry, err := NewPointsTransaction("uid-1", 0, "nothing", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, entry)
	})

	t.Run("Missing user or description is rejected", func(t *testing.T) {
		_, err := NewPointsTransaction("", 10, "desc", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewPointsTransaction("uid-1", 10, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
