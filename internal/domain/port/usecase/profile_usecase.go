package usecase

import (
	"context"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// SyncUserInput carries the identity fields the provider reports on sign-in
type SyncUserInput struct {
	UserID      string
	Email       string
	DisplayName string
	PhotoURL    string
}

// SaveProfileInput carries the editable resident profile fields
type SaveProfileInput struct {
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

// ProfileUseCase manages the resident profile and the completion gate that
// guards every point-earning and point-spending action
type ProfileUseCase interface {
	// SyncUser creates the local user record the first time the identity
	// provider reports an id, and refreshes display fields afterwards
	SyncUser(ctx context.Context, input SyncUserInput) (*entity.User, error)

	// GetProfile returns the user including profile fields and balance
	GetProfile(ctx context.Context, userID string) (*entity.User, error)

	// SaveProfile upserts the profile fields, recomputes the completion
	// gate and fires the best-effort profile webhook after the save commits
	SaveProfile(ctx context.Context, userID string, input SaveProfileInput) (*entity.User, error)

	// IsProfileComplete reports whether the user has filled every required
	// profile field; recomputed on every call, never cached
	IsProfileComplete(ctx context.Context, userID string) (bool, error)
}
