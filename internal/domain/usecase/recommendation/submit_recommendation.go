package recommendation

import (
	"context"
	"fmt"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// SubmitRecommendation stores the recommendation and credits the submitter
// PointsForRecommendation in the same transaction as the insert, so the
// reward ledger entry and the content it rewards never diverge. The webhook
// notification fires only after the commit and cannot undo it.
func (s *Service) SubmitRecommendation(ctx context.Context, userID string, input usecase.SubmitRecommendationInput) (*usecase.SubmitRecommendationResult, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	serviceType := input.ServiceType
	if input.NewServiceType != "" {
		serviceType = input.NewServiceType
	}

	rec, err := entity.NewRecommendation(
		s.codeGen.NewID(),
		userID,
		input.ProviderName,
		input.Company,
		serviceType,
		input.Contact,
		input.Description,
		input.Rating,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	rec.CardImageURL = input.CardImageURL
	rec.ServedFor = input.ServedFor

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back recommendation transaction", map[string]any{
					"user_id": userID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	users := s.uow.GetUserRepository(txCtx)
	recs := s.uow.GetRecommendationRepository(txCtx)
	ledger := s.uow.GetLedgerRepository(txCtx)

	user, err := users.GetByIDForUpdate(txCtx, userID)
	if err != nil {
		return nil, err
	}
	if !user.ProfileComplete() {
		return nil, errs.ErrIncompleteProfile
	}

	// Submission-time snapshot of the author, so the board still shows the
	// name the neighbors know even if the profile changes later
	rec.UserName = user.DisplayName
	if rec.UserName == "" {
		rec.UserName = user.Profile.FullName
	}
	rec.UserEmail = user.Email

	if input.NewServiceType != "" {
		if err := recs.EnsureServiceType(txCtx, serviceType); err != nil {
			return nil, err
		}
	}

	if err := recs.Create(txCtx, rec); err != nil {
		return nil, err
	}

	updated, err := users.AdjustPoints(txCtx, userID, entity.PointsForRecommendation)
	if err != nil {
		return nil, err
	}

	entry, err := entity.NewPointsTransaction(
		userID,
		entity.PointsForRecommendation,
		fmt.Sprintf("Recommendation reward: %s", rec.ProviderName),
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	entry.Reference = rec.ID
	if err := ledger.Append(txCtx, entry); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	s.logger.Info("Recommendation submitted", map[string]any{
		"user_id":           userID,
		"recommendation_id": rec.ID,
		"service_type":      rec.ServiceType,
		"result_balance":    updated.Points(),
	})

	if notifyErr := s.notifier.RecommendationSubmitted(ctx, recommendationPayload(rec)); notifyErr != nil {
		s.logger.Warn("Recommendation webhook delivery failed", map[string]any{
			"recommendation_id": rec.ID,
			"error":             notifyErr.Error(),
		})
	}

	return &usecase.SubmitRecommendationResult{
		Recommendation: rec,
		PointsAwarded:  entity.PointsForRecommendation,
		ResultBalance:  updated.Points(),
	}, nil
}

// recommendationPayload flattens the recommendation into the webhook body
func recommendationPayload(rec *entity.Recommendation) map[string]any {
	return map[string]any{
		"recommendationId": rec.ID,
		"userId":           rec.UserID,
		"userName":         rec.UserName,
		"userEmail":        rec.UserEmail,
		"providerName":     rec.ProviderName,
		"company":          rec.Company,
		"serviceType":      rec.ServiceType,
		"contact":          rec.Contact,
		"description":      rec.Description,
		"rating":           rec.Rating,
		"cardImageUrl":     rec.CardImageURL,
		"servedFor":        rec.ServedFor,
		"createdAt":        rec.CreatedAt,
	}
}
