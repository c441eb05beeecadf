package entity

import (
	"time"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
)

// Profile holds the resident profile fields collected after sign-up.
// All of them must be non-empty before the user may earn or spend points.
type Profile struct {
	FullName     string
	Condominium  string
	PostalCode   string
	Street       string
	District     string
	City         string
	State        string
	StreetNumber string
	Whatsapp     string
}

// Complete reports whether every required profile field is filled in
func (p Profile) Complete() bool {
	required := []string{
		p.FullName,
		p.Condominium,
		p.PostalCode,
		p.Street,
		p.District,
		p.City,
		p.State,
		p.StreetNumber,
		p.Whatsapp,
	}
	for _, field := range required {
		if field == "" {
			return false
		}
	}
	return true
}

// User represents a resident with a loyalty point balance.
// The identity provider assigns the ID; display fields mirror what it reports.
type User struct {
	ID          string    // Opaque identifier issued by the identity provider
	Email       string    // Sign-in email
	DisplayName string    // Display name from the identity provider
	PhotoURL    string    // Avatar URL from the identity provider
	Profile     Profile   // Resident profile fields
	Role        string    // "resident" or "superadmin"
	points      int64     // Spendable point balance (private, never negative)
	CreatedAt   time.Time // When the user was first seen
	UpdatedAt   time.Time // When the user was last updated
}

// NewUser creates a new user with a zero point balance
func NewUser(id, email, displayName string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &User{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		Role:        "resident",
		points:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Points returns the current spendable balance
func (u *User) Points() int64 {
	return u.points
}

// SetPoints sets the balance directly (for internal use, like repositories)
func (u *User) SetPoints(points int64) {
	u.points = points
}

// ProfileComplete reports whether the user may earn or spend points
func (u *User) ProfileComplete() bool {
	return u.Profile.Complete()
}

// CanSpend checks if the user has enough points for a deduction
func (u *User) CanSpend(cost int64) bool {
	return u.points >= cost
}

// Credit adds points to the balance
func (u *User) Credit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	u.points += amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts points from the balance if sufficient points exist.
// Returns error if the balance would go negative.
func (u *User) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if u.points < amount {
		return errs.ErrInsufficientPoints
	}
	u.points -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// IsSuperAdmin reports whether the user holds the superadmin role
func (u *User) IsSuperAdmin() bool {
	return u.Role == "superadmin"
}
