package profile

import (
	"context"
	"errors"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/notify"
	"github.com/condoindica/condoindica-api/internal/domain/port/persistence"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// UseCase manages the resident profile and its completion gate
type UseCase struct {
	userRepo     persistence.UserRepository
	notifier     notify.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new profile use case
func NewUseCase(
	userRepo persistence.UserRepository,
	notifier notify.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.ProfileUseCase = (*UseCase)(nil)

// SyncUser creates the local user record the first time the identity
// provider reports an id, and refreshes display fields on later sign-ins
func (u *UseCase) SyncUser(ctx context.Context, input usecase.SyncUserInput) (*entity.User, error) {
	if input.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	existing, err := u.userRepo.GetByID(ctx, input.UserID)
	if err == nil {
		changed := false
		if input.Email != "" && input.Email != existing.Email {
			existing.Email = input.Email
			changed = true
		}
		if input.DisplayName != "" && input.DisplayName != existing.DisplayName {
			existing.DisplayName = input.DisplayName
			changed = true
		}
		if input.PhotoURL != "" && input.PhotoURL != existing.PhotoURL {
			existing.PhotoURL = input.PhotoURL
			changed = true
		}
		if changed {
			existing.UpdatedAt = u.timeProvider.Now()
			if err := u.userRepo.Update(ctx, existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	user, err := entity.NewUser(input.UserID, input.Email, input.DisplayName, u.timeProvider)
	if err != nil {
		return nil, err
	}
	user.PhotoURL = input.PhotoURL

	if err := u.userRepo.Create(ctx, user); err != nil {
		// Another request for the same identity may have created the row first
		if errors.Is(err, errs.ErrDuplicateUser) {
			return u.userRepo.GetByID(ctx, input.UserID)
		}
		return nil, err
	}

	u.logger.Info("User created on first sign-in", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return user, nil
}

// GetProfile returns the user including profile fields and balance
func (u *UseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return u.userRepo.GetByID(ctx, userID)
}

// SaveProfile upserts the resident profile fields and recomputes the
// completion gate. After the save commits, the full profile payload is
// posted to the automation webhook; delivery failures are logged and never
// affect the saved state.
func (u *UseCase) SaveProfile(ctx context.Context, userID string, input usecase.SaveProfileInput) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Profile = entity.Profile{
		FullName:     input.FullName,
		Condominium:  input.Condominium,
		PostalCode:   input.PostalCode,
		Street:       input.Street,
		District:     input.District,
		City:         input.City,
		State:        input.State,
		StreetNumber: input.StreetNumber,
		Whatsapp:     input.Whatsapp,
	}
	user.UpdatedAt = u.timeProvider.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("Profile saved", map[string]any{
		"user_id":          user.ID,
		"profile_complete": user.ProfileComplete(),
	})

	// Fire-and-forget notification, clearly separated from the primary write
	if notifyErr := u.notifier.ProfileSaved(ctx, profilePayload(user)); notifyErr != nil {
		u.logger.Warn("Profile webhook delivery failed", map[string]any{
			"user_id": user.ID,
			"error":   notifyErr.Error(),
		})
	}

	return user, nil
}

// IsProfileComplete reports whether the user passed the completion gate.
// Recomputed from the stored fields on every call.
func (u *UseCase) IsProfileComplete(ctx context.Context, userID string) (bool, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.ProfileComplete(), nil
}

// profilePayload flattens the user into the webhook body
func profilePayload(user *entity.User) map[string]any {
	return map[string]any{
		"userId":       user.ID,
		"email":        user.Email,
		"displayName":  user.DisplayName,
		"fullName":     user.Profile.FullName,
		"condominium":  user.Profile.Condominium,
		"postalCode":   user.Profile.PostalCode,
		"street":       user.Profile.Street,
		"district":     user.Profile.District,
		"city":         user.Profile.City,
		"state":        user.Profile.State,
		"streetNumber": user.Profile.StreetNumber,
		"whatsapp":     user.Profile.Whatsapp,
		"complete":     user.ProfileComplete(),
		"updatedAt":    user.UpdatedAt,
	}
}
