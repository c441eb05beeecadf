package loyalty

import (
	"context"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
)

// AwardPoints credits a user and appends the matching ledger entry inside
// one unit of work. The caller must only invoke this from point-earning
// actions; the profile completion gate is enforced here as well, so a
// credit cannot bypass it even if a routing check is missed.
func (s *Service) AwardPoints(ctx context.Context, userID string, amount int64, description string) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	var user *entity.User
	err := s.retryOnConflict(ctx, "award_points", func() error {
		var opErr error
		user, opErr = s.awardOnce(ctx, userID, amount, description)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Points awarded", map[string]any{
		"user_id":        userID,
		"amount":         amount,
		"description":    description,
		"result_balance": user.Points(),
	})
	return user, nil
}

func (s *Service) awardOnce(ctx context.Context, userID string, amount int64, description string) (*entity.User, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back award transaction", map[string]any{
					"user_id": userID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	users := s.uow.GetUserRepository(txCtx)
	ledger := s.uow.GetLedgerRepository(txCtx)

	current, err := users.GetByIDForUpdate(txCtx, userID)
	if err != nil {
		return nil, err
	}
	if !current.ProfileComplete() {
		return nil, errs.ErrIncompleteProfile
	}

	entry, err := entity.NewPointsTransaction(userID, amount, description, s.timeProvider)
	if err != nil {
		return nil, err
	}

	updated, err := users.AdjustPoints(txCtx, userID, amount)
	if err != nil {
		return nil, err
	}

	if err := ledger.Append(txCtx, entry); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	return updated, nil
}
