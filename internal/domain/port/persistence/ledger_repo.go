package persistence

import (
	"context"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// LedgerRepository manages the append-only points ledger.
// Entries are never updated or deleted after insert.
type LedgerRepository interface {
	// Append inserts a ledger entry. Must be called inside the same
	// transaction that applies the matching balance delta.
	//
	// Possible errors:
	// - ErrUserNotFound: If the referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Append(ctx context.Context, entry *entity.PointsTransaction) error

	// ListByUser returns a user's ledger entries, newest first, bounded by limit
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.PointsTransaction, error)

	// SumByUser returns the sum of all of a user's ledger amounts.
	// Used by reconciliation to detect drift against the stored balance.
	SumByUser(ctx context.Context, userID string) (int64, error)
}
