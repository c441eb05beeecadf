package loyalty

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
	persistencemocks "github.com/condoindica/condoindica-api/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func completeProfile() entity.Profile {
	return entity.Profile{
		FullName:     "Ana Souza",
		Condominium:  "Residencial Jardim",
		PostalCode:   "01310-100",
		Street:       "Avenida Paulista",
		District:     "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
		StreetNumber: "1000",
		Whatsapp:     "+5511999990000",
	}
}

func testUser(t *testing.T, id string, balance int64) *entity.User {
	t.Helper()
	tp := coremocks.NewMockTimeProvider(t)
	tp.On("Now").Return(fixedTime).Maybe()
	user, err := entity.NewUser(id, "ana@example.com", "Ana", tp)
	require.NoError(t, err)
	user.Profile = completeProfile()
	user.SetPoints(balance)
	return user
}

func testCoupon(t *testing.T, id string, cost int64) *entity.Coupon {
	t.Helper()
	coupon, err := entity.NewCoupon(id, "Free car wash", "One wash at the garage", cost, fixedTime.Add(30*24*time.Hour), fixedTime)
	require.NoError(t, err)
	return coupon
}

type purchaseFixture struct {
	uow          *persistencemocks.MockUnitOfWork
	users        *persistencemocks.MockUserRepository
	coupons      *persistencemocks.MockCouponRepository
	ownedCoupons *persistencemocks.MockOwnedCouponRepository
	ledger       *persistencemocks.MockLedgerRepository
	codeGen      *coremocks.MockCodeGenerator
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      *Service
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()
	f := &purchaseFixture{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		users:        persistencemocks.NewMockUserRepository(t),
		coupons:      persistencemocks.NewMockCouponRepository(t),
		ownedCoupons: persistencemocks.NewMockOwnedCouponRepository(t),
		ledger:       persistencemocks.NewMockLedgerRepository(t),
		codeGen:      coremocks.NewMockCodeGenerator(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.timeProvider.On("Now").Return(fixedTime).Maybe()
	f.logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	f.service = NewService(f.uow, f.codeGen, f.timeProvider, f.logger, 2)
	return f
}

func (f *purchaseFixture) expectTransaction(ctx context.Context) {
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("GetUserRepository", ctx).Return(f.users).Maybe()
	f.uow.On("GetCouponRepository", ctx).Return(f.coupons).Maybe()
	f.uow.On("GetOwnedCouponRepository", ctx).Return(f.ownedCoupons).Maybe()
	f.uow.On("GetLedgerRepository", ctx).Return(f.ledger).Maybe()
}

func TestPurchaseCoupon(t *testing.T) {
	t.Run("debits balance, mints coupon and appends ledger entry", func(t *testing.T) {
		ctx := context.Background()
		f := newPurchaseFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 100)
		coupon := testCoupon(t, "coupon-1", 60)
		debited := testUser(t, "user-1", 40)

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil)
		f.coupons.On("GetByID", ctx, "coupon-1").Return(coupon, nil)
		f.users.On("AdjustPoints", ctx, "user-1", int64(-60)).Return(debited, nil)

		f.codeGen.On("NewID").Return("owned-1").Once()
		f.codeGen.On("NewCode").Return("a1b2c3d4-unique").Once()

		f.ownedCoupons.On("Create", ctx, mock.MatchedBy(func(oc *entity.OwnedCoupon) bool {
			return oc.ID == "owned-1" &&
				oc.CouponID == "coupon-1" &&
				oc.OwnerID == "user-1" &&
				oc.UniqueCode == "a1b2c3d4-unique" &&
				!oc.Used
		})).Return(nil)

		f.ledger.On("Append", ctx, mock.MatchedBy(func(e *entity.PointsTransaction) bool {
			return e.UserID == "user-1" &&
				e.Amount == int64(-60) &&
				e.Reference == "owned-1" &&
				e.Description == "Coupon purchase: Free car wash"
		})).Return(nil)

		f.uow.On("Commit", ctx).Return(nil)
		f.logger.On("Info", "Coupon purchased", mock.Anything).Once()

		result, err := f.service.PurchaseCoupon(ctx, "user-1", "coupon-1")

		require.NoError(t, err)
		assert.Equal(t, "owned-1", result.OwnedCouponID)
		assert.Equal(t, "Free car wash", result.CouponTitle)
		assert.Equal(t, "a1b2c3d4-unique", result.UniqueCode)
		assert.Equal(t, int64(40), result.ResultBalance)
	})

	t.Run("rejects purchase when balance is insufficient", func(t *testing.T) {
		ctx := context.Background()
		f := newPurchaseFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 40)
		coupon := testCoupon(t, "coupon-1", 60)

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil)
		f.coupons.On("GetByID", ctx, "coupon-1").Return(coupon, nil)
		f.uow.On("Rollback", ctx).Return(nil)

		result, err := f.service.PurchaseCoupon(ctx, "user-1", "coupon-1")

		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errs.IsInsufficientPointsError(err))
		// No mint, no ledger append, balance untouched
		assert.Equal(t, int64(40), user.Points())
		f.ownedCoupons.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("rejects purchase of an expired coupon", func(t *testing.T) {
		ctx := context.Background()
		f := newPurchaseFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 100)
		coupon := testCoupon(t, "coupon-1", 60)
		coupon.ExpirationDate = fixedTime.Add(-time.Hour)

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil)
		f.coupons.On("GetByID", ctx, "coupon-1").Return(coupon, nil)
		f.uow.On("Rollback", ctx).Return(nil)
		f.logger.On("Warn", "Purchase rejected for expired coupon", mock.Anything).Once()

		result, err := f.service.PurchaseCoupon(ctx, "user-1", "coupon-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrCouponExpired)
	})

	t.Run("rejects purchase when profile is incomplete", func(t *testing.T) {
		ctx := context.Background()
		f := newPurchaseFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 100)
		user.Profile.Whatsapp = ""

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil)
		f.uow.On("Rollback", ctx).Return(nil)

		result, err := f.service.PurchaseCoupon(ctx, "user-1", "coupon-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrIncompleteProfile)
		f.users.AssertNotCalled(t, "AdjustPoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rolls back when the ledger append fails", func(t *testing.T) {
		ctx := context.Background()
		f := newPurchaseFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 100)
		coupon := testCoupon(t, "coupon-1", 60)
		debited := testUser(t, "user-1", 40)

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil)
		f.coupons.On("GetByID", ctx, "coupon-1").Return(coupon, nil)
		f.users.On("AdjustPoints", ctx, "user-1", int64(-60)).Return(debited, nil)
		f.codeGen.On("NewID").Return("owned-1").Once()
		f.codeGen.On("NewCode").Return("a1b2c3d4-unique").Once()
		f.ownedCoupons.On("Create", ctx, mock.Anything).Return(nil)
		f.ledger.On("Append", ctx, mock.Anything).Return(errs.ErrDatabaseConnection)
		f.uow.On("Rollback", ctx).Return(nil)

		result, err := f.service.PurchaseCoupon(ctx, "user-1", "coupon-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("retries when a concurrent writer wins the first attempt", func(t *testing.T) {
		ctx := context.Background()
		f := newPurchaseFixture(t)
		f.expectTransaction(ctx)

		user := testUser(t, "user-1", 100)
		coupon := testCoupon(t, "coupon-1", 60)
		debited := testUser(t, "user-1", 40)

		f.users.On("GetByIDForUpdate", ctx, "user-1").Return(user, nil).Twice()
		f.coupons.On("GetByID", ctx, "coupon-1").Return(coupon, nil).Twice()
		f.users.On("AdjustPoints", ctx, "user-1", int64(-60)).Return(debited, nil).Twice()
		f.codeGen.On("NewID").Return("owned-1").Twice()
		f.codeGen.On("NewCode").Return("a1b2c3d4-unique").Twice()
		f.ownedCoupons.On("Create", ctx, mock.Anything).Return(nil).Twice()
		f.ledger.On("Append", ctx, mock.Anything).Return(nil).Twice()

		f.uow.On("Commit", ctx).Return(errs.ErrConcurrentModification).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		f.uow.On("Rollback", ctx).Return(nil).Once()

		f.timeProvider.On("Sleep", 50*coreport.Millisecond).Once()
		f.logger.On("Warn", "Retrying after concurrent modification", mock.Anything).Once()
		f.logger.On("Info", "Coupon purchased", mock.Anything).Once()

		result, err := f.service.PurchaseCoupon(ctx, "user-1", "coupon-1")

		require.NoError(t, err)
		assert.Equal(t, int64(40), result.ResultBalance)
	})

	t.Run("rejects blank identifiers without touching storage", func(t *testing.T) {
		ctx := context.Background()
		f := newPurchaseFixture(t)

		_, err := f.service.PurchaseCoupon(ctx, "", "coupon-1")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = f.service.PurchaseCoupon(ctx, "user-1", "")
		assert.ErrorIs(t, err, errs.ErrInvalidCouponID)
	})
}
