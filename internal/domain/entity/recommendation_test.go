package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
)

func TestNewRecommendation(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid recommendation", func(t *testing.T) {
		rec, err := NewRecommendation("rec-1", "uid-1", "Joao", "Encanamentos JR", "Encanador", "(11) 91234-5678", "Resolveu o vazamento", 5, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "rec-1", rec.ID)
		assert.Equal(t, 5, rec.Rating)
		assert.Equal(t, fixedTime, rec.CreatedAt)
	})

	t.Run("Rating bounds", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			rec, err := NewRecommendation("rec-1", "uid-1", "Joao", "Encanamentos JR", "Encanador", "(11) 91234-5678", "desc", rating, mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidRating)
			assert.Nil(t, rec)
		}
	})

	t.Run("Missing required fields", func(t *testing.T) {
		_, err := NewRecommendation("rec-1", "", "Joao", "Encanamentos JR", "Encanador", "contact", "desc", 4, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = NewRecommendation("rec-1", "uid-1", "", "Encanamentos JR", "Encanador", "contact", "desc", 4, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestNewComment(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid comment", func(t *testing.T) {
		comment, err := NewComment("cm-1", "rec-1", "uid-2", "Tambem recomendo", 4, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "rec-1", comment.RecommendationID)
		assert.Equal(t, 4, comment.Rating)
	})

	t.Run("Rating bounds", func(t *testing.T) {
		_, err := NewComment("cm-1", "rec-1", "uid-2", "content", 0, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRating)
	})
}

func TestAverageRating(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("No comments yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, AverageRating(nil))
	})

	t.Run("Mean over comment ratings only", func(t *testing.T) {
		first, _ := NewComment("cm-1", "rec-1", "uid-2", "bom", 4, mockTime)
		second, _ := NewComment("cm-2", "rec-1", "uid-3", "otimo", 5, mockTime)
		third, _ := NewComment("cm-3", "rec-1", "uid-4", "regular", 3, mockTime)

		avg := AverageRating([]*Comment{first, second, third})
		assert.InDelta(t, 4.0, avg, 0.0001)
	})
}
