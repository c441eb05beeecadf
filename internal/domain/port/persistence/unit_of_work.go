package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating multi-repository writes
// inside one database transaction, so that a balance delta, its ledger entry
// and any minted coupon commit or roll back together
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetCouponRepository returns a coupon repository bound to the current transaction
	GetCouponRepository(ctx context.Context) CouponRepository

	// GetOwnedCouponRepository returns an owned coupon repository bound to the current transaction
	GetOwnedCouponRepository(ctx context.Context) OwnedCouponRepository

	// GetLedgerRepository returns a ledger repository bound to the current transaction
	GetLedgerRepository(ctx context.Context) LedgerRepository

	// GetRecommendationRepository returns a recommendation repository bound to the current transaction
	GetRecommendationRepository(ctx context.Context) RecommendationRepository
}
