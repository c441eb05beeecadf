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
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
	persistencemocks "github.com/condoindica/condoindica-api/mocks/port/persistence"
)

type redeemFixture struct {
	uow          *persistencemocks.MockUnitOfWork
	coupons      *persistencemocks.MockCouponRepository
	ownedCoupons *persistencemocks.MockOwnedCouponRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	service      *Service
}

func newRedeemFixture(t *testing.T) *redeemFixture {
	t.Helper()
	f := &redeemFixture{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		coupons:      persistencemocks.NewMockCouponRepository(t),
		ownedCoupons: persistencemocks.NewMockOwnedCouponRepository(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.timeProvider.On("Now").Return(fixedTime).Maybe()
	f.uow.On("GetOwnedCouponRepository", mock.Anything).Return(f.ownedCoupons).Maybe()
	f.uow.On("GetCouponRepository", mock.Anything).Return(f.coupons).Maybe()
	f.service = NewService(f.uow, coremocks.NewMockCodeGenerator(t), f.timeProvider, f.logger, 2)
	return f
}

func testOwnedCoupon(t *testing.T, code string) *entity.OwnedCoupon {
	t.Helper()
	tp := coremocks.NewMockTimeProvider(t)
	tp.On("Now").Return(fixedTime.Add(-24 * time.Hour)).Maybe()
	owned, err := entity.NewOwnedCoupon("owned-1", "coupon-1", "user-1", code, tp)
	require.NoError(t, err)
	return owned
}

func TestRedeemCoupon(t *testing.T) {
	t.Run("flips the code exactly once and returns catalog metadata", func(t *testing.T) {
		ctx := context.Background()
		f := newRedeemFixture(t)

		owned := testOwnedCoupon(t, "redeem-code")
		coupon := testCoupon(t, "coupon-1", 60)

		f.ownedCoupons.On("GetByCode", ctx, "redeem-code").Return(owned, nil)
		f.ownedCoupons.On("MarkUsed", ctx, "owned-1", "validator-1", fixedTime).Return(true, nil)
		f.coupons.On("GetByID", ctx, "coupon-1").Return(coupon, nil)
		f.logger.On("Info", "Coupon redeemed", mock.Anything).Once()

		result, err := f.service.RedeemCoupon(ctx, "redeem-code", "validator-1")

		require.NoError(t, err)
		assert.Equal(t, "coupon-1", result.CouponID)
		assert.Equal(t, "Free car wash", result.Title)
		assert.Equal(t, fixedTime, result.ValidatedAt)
	})

	t.Run("rejects an unknown code", func(t *testing.T) {
		ctx := context.Background()
		f := newRedeemFixture(t)

		f.ownedCoupons.On("GetByCode", ctx, "missing-code").Return(nil, errs.ErrCouponCodeInvalid)
		f.logger.On("Warn", "Redemption code lookup failed", mock.Anything).Once()

		result, err := f.service.RedeemCoupon(ctx, "missing-code", "validator-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrCouponCodeInvalid)
	})

	t.Run("rejects a code that was already consumed", func(t *testing.T) {
		ctx := context.Background()
		f := newRedeemFixture(t)

		owned := testOwnedCoupon(t, "redeem-code")
		require.NoError(t, owned.MarkUsed("validator-0", f.timeProvider))

		f.ownedCoupons.On("GetByCode", ctx, "redeem-code").Return(owned, nil)

		result, err := f.service.RedeemCoupon(ctx, "redeem-code", "validator-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrCouponAlreadyUsed)
		// Second rejection is idempotent and never mutates the record
		f.ownedCoupons.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("loser of a concurrent flip is rejected without mutation", func(t *testing.T) {
		ctx := context.Background()
		f := newRedeemFixture(t)

		owned := testOwnedCoupon(t, "redeem-code")

		f.ownedCoupons.On("GetByCode", ctx, "redeem-code").Return(owned, nil)
		f.ownedCoupons.On("MarkUsed", ctx, "owned-1", "validator-2", fixedTime).Return(false, nil)
		f.logger.On("Warn", "Redemption lost race to concurrent validator", mock.Anything).Once()

		result, err := f.service.RedeemCoupon(ctx, "redeem-code", "validator-2")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrCouponAlreadyUsed)
	})

	t.Run("rejects blank code and blank validator", func(t *testing.T) {
		ctx := context.Background()
		f := newRedeemFixture(t)

		_, err := f.service.RedeemCoupon(ctx, "", "validator-1")
		assert.ErrorIs(t, err, errs.ErrCouponCodeInvalid)

		_, err = f.service.RedeemCoupon(ctx, "redeem-code", "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
