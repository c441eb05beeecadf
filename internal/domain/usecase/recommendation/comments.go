package recommendation

import (
	"context"
	"fmt"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// AddComment stores a rated comment and credits the author
// PointsForComment in the same transaction as the insert
func (s *Service) AddComment(ctx context.Context, userID, recommendationID, content string, rating int) (*usecase.AddCommentResult, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	comment, err := entity.NewComment(s.codeGen.NewID(), recommendationID, userID, content, rating, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back comment transaction", map[string]any{
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

	comment.AuthorName = user.DisplayName
	if comment.AuthorName == "" {
		comment.AuthorName = user.Profile.FullName
	}

	rec, err := recs.GetByID(txCtx, recommendationID)
	if err != nil {
		return nil, err
	}

	if err := recs.CreateComment(txCtx, comment); err != nil {
		return nil, err
	}

	updated, err := users.AdjustPoints(txCtx, userID, entity.PointsForComment)
	if err != nil {
		return nil, err
	}

	entry, err := entity.NewPointsTransaction(
		userID,
		entity.PointsForComment,
		fmt.Sprintf("Comment reward: %s", rec.ProviderName),
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	entry.Reference = comment.ID
	if err := ledger.Append(txCtx, entry); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	s.logger.Info("Comment added", map[string]any{
		"user_id":           userID,
		"recommendation_id": recommendationID,
		"comment_id":        comment.ID,
		"rating":            rating,
	})

	return &usecase.AddCommentResult{
		Comment:       comment,
		PointsAwarded: entity.PointsForComment,
		ResultBalance: updated.Points(),
	}, nil
}

// ListComments returns a recommendation's comments, oldest first
func (s *Service) ListComments(ctx context.Context, recommendationID string) ([]*entity.Comment, error) {
	if recommendationID == "" {
		return nil, errs.ErrInvalidRequest
	}
	recs := s.uow.GetRecommendationRepository(ctx)
	return recs.ListComments(ctx, recommendationID)
}
