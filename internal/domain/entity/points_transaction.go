package entity

import (
	"time"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
)

// Points awarded by the community actions that feed the ledger
const (
	// PointsForRecommendation is credited when a resident submits a
	// service provider recommendation
	PointsForRecommendation int64 = 20
	// PointsForComment is credited when a resident rates a recommendation
	// with a comment
	PointsForComment int64 = 5
)

// PointsTransaction is an immutable ledger entry recording a points gain or
// spend. Entries are append-only; the sum of a user's entries equals their
// stored balance at every committed state.
type PointsTransaction struct {
	ID          uint64    // Database-assigned sequence number
	UserID      string    // User whose balance the entry affects
	Amount      int64     // Signed point delta, never zero
	Description string    // Human-readable reason for the entry
	Reference   string    // Optional id of the entity that caused the entry
	CreatedAt   time.Time // When the entry was appended
}

// NewPointsTransaction creates a ledger entry with basic validation
func NewPointsTransaction(userID string, amount int64, description string, timeProvider coreport.TimeProvider) (*PointsTransaction, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amount == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if description == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &PointsTransaction{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this entry increased the user's balance
func (t *PointsTransaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if this entry decreased the user's balance
func (t *PointsTransaction) IsDebit() bool {
	return t.Amount < 0
}
