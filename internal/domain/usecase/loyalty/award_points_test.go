package loyalty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
	persistencemocks "github.com/condoindica/condoindica-api/mocks/port/persistence"
)

type awardFixture struct {
	uow          *persistencemocks.MockUnitOfWork
	users        *persistencemocks.MockUserRepository
	ledger       *persistencemocks.MockLedgerRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      *Service
}

func newAwardFixture(t *testing.T) *awardFixture {
	t.Helper()
	f := &awardFixture{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		users:        persistencemocks.NewMockUserRepository(t),
		ledger:       persistencemocks.NewMockLedgerRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.timeProvider.On("Now").Return(fixedTime).Maybe()
	f.service = NewService(f.uow, coremocks.NewMockCodeGenerator(t), f.timeProvider, f.logger, 2)
	return f
}

func (f *awardFixture) expectTransaction(ctx context.Context) {
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("GetUserRepository", ctx).Return(f.users).Maybe()
	f.uow.On("GetLedgerRepository", ctx).Return(f.ledger).Maybe()
}

func TestAwardPoints(t *testing.T) {
	t.Run("credits the balance and appends the matching ledger entry", func(t *testing.T) {
		ctx := context.Background()
		f := newAwardFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 10)
		credited := testUser(t, "user-1", 30)

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil)
		f.users.On("AdjustPoints", ctx, "user-1", entity.PointsForRecommendation).Return(credited, nil)
		f.ledger.On("Append", ctx, mock.MatchedBy(func(e *entity.PointsTransaction) bool {
			return e.UserID == "user-1" &&
				e.Amount == entity.PointsForRecommendation &&
				e.Description == "Recommendation reward: plumber"
		})).Return(nil)
		f.uow.On("Commit", ctx).Return(nil)
		f.logger.On("Info", "Points awarded", mock.Anything).Once()

		result, err := f.service.AwardPoints(ctx, "user-1", entity.PointsForRecommendation, "Recommendation reward: plumber")

		require.NoError(t, err)
		assert.Equal(t, int64(30), result.Points())
	})

	t.Run("rejects a credit while the profile is incomplete", func(t *testing.T) {
		ctx := context.Background()
		f := newAwardFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 10)
		user.Profile.City = ""

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil)
		f.uow.On("Rollback", ctx).Return(nil)

		result, err := f.service.AwardPoints(ctx, "user-1", 20, "Recommendation reward: plumber")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrIncompleteProfile)
		f.ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ctx := context.Background()
		f := newAwardFixture(t)

		_, err := f.service.AwardPoints(ctx, "user-1", 0, "nothing")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = f.service.AwardPoints(ctx, "user-1", -5, "nothing")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("rolls back when the balance write fails", func(t *testing.T) {
		ctx := context.Background()
		f := newAwardFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 10)

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil)
		f.users.On("AdjustPoints", ctx, "user-1", int64(20)).Return(nil, errs.ErrDatabaseConnection)
		f.uow.On("Rollback", ctx).Return(nil)

		result, err := f.service.AwardPoints(ctx, "user-1", 20, "Recommendation reward: plumber")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
