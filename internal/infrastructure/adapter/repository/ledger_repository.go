package repository

import (
	"context"
	"errors"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LedgerRepository implements persistence.LedgerRepository using GORM.
// Rows are append-only; no code path updates or deletes them.
type LedgerRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func ledgerModelToEntity(m *model.PointsTransaction) *entity.PointsTransaction {
	return &entity.PointsTransaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Description: m.Description,
		Reference:   m.Reference,
		CreatedAt:   m.CreatedAt,
	}
}

// Append inserts a ledger entry. Must run in the same transaction as the
// matching balance delta.
func (r *LedgerRepository) Append(ctx context.Context, entry *entity.PointsTransaction) error {
	entryModel := model.PointsTransaction{
		UserID:      entry.UserID,
		Amount:      entry.Amount,
		Description: entry.Description,
		Reference:   entry.Reference,
		CreatedAt:   entry.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&entryModel)

	if result.Error != nil {
		mapped := r.errorMapper.MapError(result.Error, EntityTypeLedger)
		if errors.Is(mapped, errs.ErrConstraintViolation) {
			// the only constraint on this table is the user foreign key
			r.logger.Warn("Ledger append rejected by constraint", map[string]any{
				"user_id": entry.UserID,
				"error":   result.Error.Error(),
			})
			return errs.ErrUserNotFound
		}
		r.logger.Error("Database error when appending ledger entry", map[string]any{
			"user_id": entry.UserID,
			"error":   result.Error.Error(),
		})
		return mapped
	}

	entry.ID = entryModel.ID
	return nil
}

// ListByUser returns a user's ledger entries, newest first
func (r *LedgerRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.PointsTransaction, error) {
	var entryModels []model.PointsTransaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entryModels)

	if result.Error != nil {
		r.logger.Error("Database error when listing ledger entries", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.errorMapper.MapError(result.Error, EntityTypeLedger)
	}

	entries := make([]*entity.PointsTransaction, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, ledgerModelToEntity(&entryModels[i]))
	}
	return entries, nil
}

// SumByUser returns the sum of all of a user's ledger amounts
func (r *LedgerRepository) SumByUser(ctx context.Context, userID string) (int64, error) {
	var sum int64
	result := r.db.WithContext(ctx).Model(&model.PointsTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum)

	if result.Error != nil {
		r.logger.Error("Database error when summing ledger", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return 0, r.errorMapper.MapError(result.Error, EntityTypeLedger)
	}

	return sum, nil
}
