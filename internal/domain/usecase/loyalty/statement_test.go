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

type statementFixture struct {
	uow          *persistencemocks.MockUnitOfWork
	users        *persistencemocks.MockUserRepository
	coupons      *persistencemocks.MockCouponRepository
	ownedCoupons *persistencemocks.MockOwnedCouponRepository
	ledger       *persistencemocks.MockLedgerRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      *Service
}

func newStatementFixture(t *testing.T) *statementFixture {
	t.Helper()
	f := &statementFixture{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		users:        persistencemocks.NewMockUserRepository(t),
		coupons:      persistencemocks.NewMockCouponRepository(t),
		ownedCoupons: persistencemocks.NewMockOwnedCouponRepository(t),
		ledger:       persistencemocks.NewMockLedgerRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.timeProvider.On("Now").Return(fixedTime).Maybe()
	f.uow.On("GetUserRepository", mock.Anything).Return(f.users).Maybe()
	f.uow.On("GetCouponRepository", mock.Anything).Return(f.coupons).Maybe()
	f.uow.On("GetOwnedCouponRepository", mock.Anything).Return(f.ownedCoupons).Maybe()
	f.uow.On("GetLedgerRepository", mock.Anything).Return(f.ledger).Maybe()
	f.service = NewService(f.uow, coremocks.NewMockCodeGenerator(t), f.timeProvider, f.logger, 2)
	return f
}

func TestListAvailableCoupons(t *testing.T) {
	ctx := context.Background()
	f := newStatementFixture(t)

	catalog := []*entity.Coupon{testCoupon(t, "coupon-1", 60), testCoupon(t, "coupon-2", 30)}
	f.coupons.On("ListAvailable", ctx, fixedTime).Return(catalog, nil)

	result, err := f.service.ListAvailableCoupons(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestListOwnedCoupons(t *testing.T) {
	t.Run("joins owned instances with catalog metadata", func(t *testing.T) {
		ctx := context.Background()
		f := newStatementFixture(t)

		first := testOwnedCoupon(t, "code-1")
		second := testOwnedCoupon(t, "code-2")
		second.ID = "owned-2"
		coupon := testCoupon(t, "coupon-1", 60)

		f.ownedCoupons.On("ListByOwner", ctx, "user-1").Return([]*entity.OwnedCoupon{first, second}, nil)
		// Both instances share one catalog entry; it is resolved once
		f.coupons.On("GetByID", ctx, "coupon-1").Return(coupon, nil).Once()

		views, err := f.service.ListOwnedCoupons(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "code-1", views[0].OwnedCoupon.UniqueCode)
		assert.Equal(t, coupon, views[0].Coupon)
		assert.Equal(t, coupon, views[1].Coupon)
	})

	t.Run("fails when a catalog entry is missing", func(t *testing.T) {
		ctx := context.Background()
		f := newStatementFixture(t)

		owned := testOwnedCoupon(t, "code-1")
		f.ownedCoupons.On("ListByOwner", ctx, "user-1").Return([]*entity.OwnedCoupon{owned}, nil)
		f.coupons.On("GetByID", ctx, "coupon-1").Return(nil, errs.ErrCouponNotFound)
		f.logger.On("Error", "Owned coupon references missing catalog entry", mock.Anything).Once()

		views, err := f.service.ListOwnedCoupons(ctx, "user-1")

		assert.Nil(t, views)
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})
}

func TestGetStatement(t *testing.T) {
	t.Run("returns balance and ledger entries", func(t *testing.T) {
		ctx := context.Background()
		f := newStatementFixture(t)

		user := testUser(t, "user-1", 40)
		entries := []*entity.PointsTransaction{
			{UserID: "user-1", Amount: -60, Description: "Coupon purchase: Free car wash"},
			{UserID: "user-1", Amount: 100, Description: "Recommendation reward: plumber"},
		}

		f.users.On("GetByID", ctx, "user-1").Return(user, nil)
		f.ledger.On("ListByUser", ctx, "user-1", 10).Return(entries, nil)

		result, err := f.service.GetStatement(ctx, "user-1", 10)

		require.NoError(t, err)
		assert.Equal(t, int64(40), result.Balance)
		assert.Len(t, result.Entries, 2)
	})

	t.Run("applies the default limit when none is given", func(t *testing.T) {
		ctx := context.Background()
		f := newStatementFixture(t)

		user := testUser(t, "user-1", 0)
		f.users.On("GetByID", ctx, "user-1").Return(user, nil)
		f.ledger.On("ListByUser", ctx, "user-1", DefaultStatementLimit).Return(nil, nil)

		result, err := f.service.GetStatement(ctx, "user-1", 0)

		require.NoError(t, err)
		assert.Empty(t, result.Entries)
	})
}
