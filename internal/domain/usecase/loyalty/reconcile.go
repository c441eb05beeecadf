package loyalty

import (
	"context"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// ReconcileBalance compares a user's stored balance against the sum of
// their ledger entries. The ledger is the source of truth: the denormalized
// balance is only ever written in the same transaction that appends an
// entry, so any drift indicates a correctness bug and is reported rather
// than silently repaired.
func (s *Service) ReconcileBalance(ctx context.Context, userID string) (*usecase.ReconciliationResult, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	users := s.uow.GetUserRepository(ctx)
	ledger := s.uow.GetLedgerRepository(ctx)

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum, err := ledger.SumByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &usecase.ReconciliationResult{
		UserID:    userID,
		Balance:   user.Points(),
		LedgerSum: sum,
		Drift:     user.Points() - sum,
	}

	if !result.Consistent() {
		s.logger.Error("Balance drift detected against ledger", map[string]any{
			"user_id":    userID,
			"balance":    result.Balance,
			"ledger_sum": result.LedgerSum,
			"drift":      result.Drift,
		})
	}

	return result, nil
}
