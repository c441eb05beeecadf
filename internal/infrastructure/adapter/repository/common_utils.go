package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrorType classifies a database failure
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	LockError         ErrorType = "lock"
	TransientError    ErrorType = "transient"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier inspects database errors by message. GORM surfaces
// Postgres failures as plain errors, so classification matches on the
// vocabulary the Postgres driver actually emits.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

func containsAny(msg string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	switch {
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}

	return ""
}

// IsDuplicateKeyError reports a unique index violation.
// Postgres: duplicate key value violates unique constraint "..."
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(strings.ToLower(err.Error()),
		"duplicate key",
		"unique constraint",
	)
}

// IsLockError reports a deadlock, a lost serializable transaction or a
// canceled lock wait. All of them are retryable upstream.
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(strings.ToLower(err.Error()),
		"deadlock detected",
		"could not serialize access",
		"serialization failure",
		"lock timeout",
	)
}

// IsTransientError reports a failure worth retrying on a fresh connection
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(strings.ToLower(err.Error()),
		"connection reset",
		"connection refused",
		"broken pipe",
		"i/o timeout",
		"server closed",
		"eof",
	)
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(strings.ToLower(err.Error()),
		"connection",
		"dial",
		"network",
	) || c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(strings.ToLower(err.Error()),
		"violates",
		"constraint",
		"foreign key",
		"not-null",
	) || c.IsDuplicateKeyError(err)
}

// lockForUpdate adds an exclusive row lock to the query. Only meaningful
// inside a transaction.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
