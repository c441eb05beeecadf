package loyalty

import (
	"context"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// RedeemCoupon validates a redemption code on behalf of a validating actor.
// The code is looked up across all owners without knowing the owner in
// advance. The flip to used is a conditional write that only succeeds while
// used is still false, so two racing validators can never both succeed; the
// loser observes the consumed state and is rejected without mutation.
// Rejections are idempotent and always safe to retry.
func (s *Service) RedeemCoupon(ctx context.Context, code, validatorID string) (*usecase.RedemptionResult, error) {
	if code == "" {
		return nil, errs.ErrCouponCodeInvalid
	}
	if validatorID == "" {
		return nil, errs.ErrInvalidUserID
	}

	ownedCoupons := s.uow.GetOwnedCouponRepository(ctx)
	coupons := s.uow.GetCouponRepository(ctx)

	owned, err := ownedCoupons.GetByCode(ctx, code)
	if err != nil {
		s.logger.Warn("Redemption code lookup failed", map[string]any{
			"validator_id": validatorID,
			"error":        err.Error(),
		})
		return nil, err
	}

	if owned.Used {
		return nil, errs.NewRedemptionError(code, validatorID, "code already consumed", errs.ErrCouponAlreadyUsed)
	}

	validatedAt := s.timeProvider.Now()
	flipped, err := ownedCoupons.MarkUsed(ctx, owned.ID, validatorID, validatedAt)
	if err != nil {
		return nil, err
	}
	if !flipped {
		// A concurrent validator won the conditional write
		s.logger.Warn("Redemption lost race to concurrent validator", map[string]any{
			"owned_id":     owned.ID,
			"validator_id": validatorID,
		})
		return nil, errs.NewRedemptionError(code, validatorID, "code already consumed", errs.ErrCouponAlreadyUsed)
	}

	coupon, err := coupons.GetByID(ctx, owned.CouponID)
	if err != nil {
		// The flip committed; still report the redemption even if the
		// catalog metadata could not be loaded
		s.logger.Error("Failed to load catalog entry for redeemed coupon", map[string]any{
			"owned_id":  owned.ID,
			"coupon_id": owned.CouponID,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Coupon redeemed", map[string]any{
		"owned_id":     owned.ID,
		"coupon_id":    coupon.ID,
		"owner_id":     owned.OwnerID,
		"validator_id": validatorID,
	})

	return &usecase.RedemptionResult{
		CouponID:       coupon.ID,
		Title:          coupon.Title,
		Description:    coupon.Description,
		ExpirationDate: coupon.ExpirationDate,
		ValidatedAt:    validatedAt,
	}, nil
}
