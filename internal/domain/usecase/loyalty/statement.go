package loyalty

import (
	"context"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// DefaultStatementLimit bounds the ledger entries returned by a statement
// when the caller does not ask for a specific page size
const DefaultStatementLimit = 100

// ListAvailableCoupons returns the catalog entries that can still be purchased
func (s *Service) ListAvailableCoupons(ctx context.Context) ([]*entity.Coupon, error) {
	coupons := s.uow.GetCouponRepository(ctx)
	return coupons.ListAvailable(ctx, s.timeProvider.Now())
}

// ListOwnedCoupons returns the user's purchased coupons joined with their
// catalog metadata, newest purchase first
func (s *Service) ListOwnedCoupons(ctx context.Context, userID string) ([]*usecase.OwnedCouponView, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	ownedCoupons := s.uow.GetOwnedCouponRepository(ctx)
	coupons := s.uow.GetCouponRepository(ctx)

	owned, err := ownedCoupons.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Catalog entries repeat across owned instances, so resolve each id once
	catalog := make(map[string]*entity.Coupon, len(owned))
	views := make([]*usecase.OwnedCouponView, 0, len(owned))
	for _, oc := range owned {
		coupon, ok := catalog[oc.CouponID]
		if !ok {
			coupon, err = coupons.GetByID(ctx, oc.CouponID)
			if err != nil {
				s.logger.Error("Owned coupon references missing catalog entry", map[string]any{
					"owned_id":  oc.ID,
					"coupon_id": oc.CouponID,
					"error":     err.Error(),
				})
				return nil, err
			}
			catalog[oc.CouponID] = coupon
		}
		views = append(views, &usecase.OwnedCouponView{OwnedCoupon: oc, Coupon: coupon})
	}

	return views, nil
}

// GetStatement returns the user's balance and ledger entries, newest first
func (s *Service) GetStatement(ctx context.Context, userID string, limit int) (*usecase.StatementResult, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if limit <= 0 {
		limit = DefaultStatementLimit
	}

	users := s.uow.GetUserRepository(ctx)
	ledger := s.uow.GetLedgerRepository(ctx)

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries, err := ledger.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return &usecase.StatementResult{
		Balance: user.Points(),
		Entries: entries,
	}, nil
}
