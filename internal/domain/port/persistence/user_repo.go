package persistence

import (
	"context"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by the identity provider's opaque id
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByIDForUpdate retrieves a user while holding an exclusive row lock.
	// Must be called inside a transaction; concurrent balance mutations for
	// the same user serialize behind the lock.
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrConcurrentModification: If the lock could not be acquired
	// - ErrDatabaseConnection: If database connection fails
	GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error)

	// Create creates a new user record, used when the identity provider
	// reports a sign-in for an id we have not seen before
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Update persists user profile fields and balance
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, user *entity.User) error

	// AdjustPoints applies a signed balance delta after re-reading the
	// current value under an exclusive row lock. The committed balance is
	// never allowed to go negative. Must be called inside a transaction so
	// the delta and its ledger entry commit together.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientPoints: If the delta would make the balance negative
	// - ErrConcurrentModification: If a concurrent writer won the row
	// - ErrDatabaseConnection: If database connection fails
	AdjustPoints(ctx context.Context, userID string, delta int64) (*entity.User, error)
}
