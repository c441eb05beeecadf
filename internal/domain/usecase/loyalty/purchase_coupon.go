package loyalty

import (
	"context"
	"fmt"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// PurchaseCoupon atomically debits the user's balance, mints an owned coupon
// with a fresh globally unique redemption code and appends the matching
// ledger entry. Either all three effects commit or none do; the committed
// balance never goes negative. Concurrent purchases by the same user
// serialize on the row lock taken by GetByIDForUpdate, and a lost race is
// retried before surfacing.
func (s *Service) PurchaseCoupon(ctx context.Context, userID, couponID string) (*usecase.PurchaseResult, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if couponID == "" {
		return nil, errs.ErrInvalidCouponID
	}

	var result *usecase.PurchaseResult
	err := s.retryOnConflict(ctx, "purchase_coupon", func() error {
		var opErr error
		result, opErr = s.purchaseOnce(ctx, userID, couponID)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Coupon purchased", map[string]any{
		"user_id":        userID,
		"coupon_id":      couponID,
		"owned_id":       result.OwnedCouponID,
		"result_balance": result.ResultBalance,
	})
	return result, nil
}

// purchaseOnce runs a single purchase attempt inside one unit of work
func (s *Service) purchaseOnce(ctx context.Context, userID, couponID string) (*usecase.PurchaseResult, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back purchase transaction", map[string]any{
					"user_id": userID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	users := s.uow.GetUserRepository(txCtx)
	coupons := s.uow.GetCouponRepository(txCtx)
	ownedCoupons := s.uow.GetOwnedCouponRepository(txCtx)
	ledger := s.uow.GetLedgerRepository(txCtx)

	// Lock the user row first so concurrent purchases serialize on the
	// balance read-check-write
	user, err := users.GetByIDForUpdate(txCtx, userID)
	if err != nil {
		return nil, err
	}

	if !user.ProfileComplete() {
		return nil, errs.ErrIncompleteProfile
	}

	coupon, err := coupons.GetByID(txCtx, couponID)
	if err != nil {
		return nil, err
	}

	if coupon.Expired(s.timeProvider.Now()) {
		s.logger.Warn("Purchase rejected for expired coupon", map[string]any{
			"user_id":    userID,
			"coupon_id":  couponID,
			"expired_at": coupon.ExpirationDate,
		})
		return nil, errs.ErrCouponExpired
	}

	if !user.CanSpend(coupon.Cost) {
		return nil, errs.NewInsufficientPointsError(userID, coupon.Cost, user.Points())
	}

	updated, err := users.AdjustPoints(txCtx, userID, -coupon.Cost)
	if err != nil {
		return nil, err
	}

	owned, err := entity.NewOwnedCoupon(s.codeGen.NewID(), coupon.ID, userID, s.codeGen.NewCode(), s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := ownedCoupons.Create(txCtx, owned); err != nil {
		return nil, err
	}

	entry, err := entity.NewPointsTransaction(userID, -coupon.Cost, fmt.Sprintf("Coupon purchase: %s", coupon.Title), s.timeProvider)
	if err != nil {
		return nil, err
	}
	entry.Reference = owned.ID
	if err := ledger.Append(txCtx, entry); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	return &usecase.PurchaseResult{
		OwnedCouponID: owned.ID,
		CouponTitle:   coupon.Title,
		UniqueCode:    owned.UniqueCode,
		ResultBalance: updated.Points(),
	}, nil
}
