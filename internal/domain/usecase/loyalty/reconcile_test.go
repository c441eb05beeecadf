package loyalty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
)

func TestReconcileBalance(t *testing.T) {
	t.Run("reports a consistent balance", func(t *testing.T) {
		ctx := context.Background()
		f := newStatementFixture(t)

		user := testUser(t, "user-1", 40)
		f.users.On("GetByID", ctx, "user-1").Return(user, nil)
		f.ledger.On("SumByUser", ctx, "user-1").Return(int64(40), nil)

		result, err := f.service.ReconcileBalance(ctx, "user-1")

		require.NoError(t, err)
		assert.True(t, result.Consistent())
		assert.Equal(t, int64(0), result.Drift)
	})

	t.Run("reports drift when the balance disagrees with the ledger", func(t *testing.T) {
		ctx := context.Background()
		f := newStatementFixture(t)

		user := testUser(t, "user-1", 55)
		f.users.On("GetByID", ctx, "user-1").Return(user, nil)
		f.ledger.On("SumByUser", ctx, "user-1").Return(int64(40), nil)
		f.logger.On("Error", "Balance drift detected against ledger", mock.Anything).Once()

		result, err := f.service.ReconcileBalance(ctx, "user-1")

		require.NoError(t, err)
		assert.False(t, result.Consistent())
		assert.Equal(t, int64(15), result.Drift)
	})

	t.Run("fails for an unknown user", func(t *testing.T) {
		ctx := context.Background()
		f := newStatementFixture(t)

		f.users.On("GetByID", ctx, "user-404").Return(nil, errs.ErrUserNotFound)

		result, err := f.service.ReconcileBalance(ctx, "user-404")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
