package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
	notifymocks "github.com/condoindica/condoindica-api/mocks/port/notify"
	persistencemocks "github.com/condoindica/condoindica-api/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	users        *persistencemocks.MockUserRepository
	notifier     *notifymocks.MockNotifier
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
	useCase      *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:        persistencemocks.NewMockUserRepository(t),
		notifier:     notifymocks.NewMockNotifier(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}
	f.timeProvider.On("Now").Return(fixedTime).Maybe()
	f.useCase = NewUseCase(f.users, f.notifier, f.timeProvider, f.logger)
	return f
}

func existingUser(t *testing.T, id string) *entity.User {
	t.Helper()
	tp := coremocks.NewMockTimeProvider(t)
	tp.On("Now").Return(fixedTime.Add(-48 * time.Hour)).Maybe()
	user, err := entity.NewUser(id, "ana@example.com", "Ana", tp)
	require.NoError(t, err)
	return user
}

func completeInput() usecase.SaveProfileInput {
	return usecase.SaveProfileInput{
		FullName:     "Ana Souza",
		Condominium:  "Residencial Jardim",
		PostalCode:   "01310-100",
		Street:       "Avenida Paulista",
		District:     "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
		StreetNumber: "1000",
		Whatsapp:     "+5511999990000",
	}
}

func TestSyncUser(t *testing.T) {
	t.Run("creates the record the first time an identity appears", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		f.users.On("GetByID", ctx, "user-1").Return(nil, errs.ErrUserNotFound)
		f.users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "user-1" && u.Email == "ana@example.com" && u.Points() == 0
		})).Return(nil)
		f.logger.On("Info", "User created on first sign-in", mock.Anything).Once()

		user, err := f.useCase.SyncUser(ctx, usecase.SyncUserInput{
			UserID:      "user-1",
			Email:       "ana@example.com",
			DisplayName: "Ana",
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.False(t, user.ProfileComplete())
	})

	t.Run("refreshes display fields on a later sign-in", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		user := existingUser(t, "user-1")
		f.users.On("GetByID", ctx, "user-1").Return(user, nil)
		f.users.On("Update", ctx, user).Return(nil)

		got, err := f.useCase.SyncUser(ctx, usecase.SyncUserInput{
			UserID:      "user-1",
			Email:       "ana@example.com",
			DisplayName: "Ana Souza",
			PhotoURL:    "https://example.com/ana.png",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", got.DisplayName)
		assert.Equal(t, "https://example.com/ana.png", got.PhotoURL)
		assert.Equal(t, fixedTime, got.UpdatedAt)
	})

	t.Run("does not write when nothing changed", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		user := existingUser(t, "user-1")
		f.users.On("GetByID", ctx, "user-1").Return(user, nil)

		_, err := f.useCase.SyncUser(ctx, usecase.SyncUserInput{
			UserID:      "user-1",
			Email:       "ana@example.com",
			DisplayName: "Ana",
		})

		require.NoError(t, err)
		f.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("falls back to the winner when two sign-ins race on create", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		winner := existingUser(t, "user-1")
		f.users.On("GetByID", ctx, "user-1").Return(nil, errs.ErrUserNotFound).Once()
		f.users.On("Create", ctx, mock.Anything).Return(errs.ErrDuplicateUser)
		f.users.On("GetByID", ctx, "user-1").Return(winner, nil).Once()

		got, err := f.useCase.SyncUser(ctx, usecase.SyncUserInput{UserID: "user-1", Email: "ana@example.com"})

		require.NoError(t, err)
		assert.Equal(t, winner, got)
	})
}

func TestSaveProfile(t *testing.T) {
	t.Run("stores the fields and fires the webhook after the save", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		user := existingUser(t, "user-1")
		f.users.On("GetByID", ctx, "user-1").Return(user, nil)
		f.users.On("Update", ctx, user).Return(nil)
		f.logger.On("Info", "Profile saved", mock.Anything).Once()
		f.notifier.On("ProfileSaved", ctx, mock.MatchedBy(func(payload map[string]any) bool {
			return payload["userId"] == "user-1" && payload["complete"] == true
		})).Return(nil)

		got, err := f.useCase.SaveProfile(ctx, "user-1", completeInput())

		require.NoError(t, err)
		assert.True(t, got.ProfileComplete())
		assert.Equal(t, "Residencial Jardim", got.Profile.Condominium)
	})

	t.Run("webhook failure never fails the save", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		user := existingUser(t, "user-1")
		f.users.On("GetByID", ctx, "user-1").Return(user, nil)
		f.users.On("Update", ctx, user).Return(nil)
		f.logger.On("Info", "Profile saved", mock.Anything).Once()
		f.notifier.On("ProfileSaved", ctx, mock.Anything).Return(errs.ErrExternalService)
		f.logger.On("Warn", "Profile webhook delivery failed", mock.Anything).Once()

		got, err := f.useCase.SaveProfile(ctx, "user-1", completeInput())

		require.NoError(t, err)
		assert.True(t, got.ProfileComplete())
	})

	t.Run("partial input leaves the gate closed", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		user := existingUser(t, "user-1")
		input := completeInput()
		input.Whatsapp = ""

		f.users.On("GetByID", ctx, "user-1").Return(user, nil)
		f.users.On("Update", ctx, user).Return(nil)
		f.logger.On("Info", "Profile saved", mock.Anything).Once()
		f.notifier.On("ProfileSaved", ctx, mock.Anything).Return(nil)

		got, err := f.useCase.SaveProfile(ctx, "user-1", input)

		require.NoError(t, err)
		assert.False(t, got.ProfileComplete())
	})
}

func TestIsProfileComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	user := existingUser(t, "user-1")
	f.users.On("GetByID", ctx, "user-1").Return(user, nil).Once()

	complete, err := f.useCase.IsProfileComplete(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, complete)

	// The gate reopens from stored fields on every call, never from a cache
	user.Profile = entity.Profile{
		FullName:     "Ana Souza",
		Condominium:  "Residencial Jardim",
		PostalCode:   "01310-100",
		Street:       "Avenida Paulista",
		District:     "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
		StreetNumber: "1000",
		Whatsapp:     "+5511999990000",
	}
	f.users.On("GetByID", ctx, "user-1").Return(user, nil).Once()

	complete, err = f.useCase.IsProfileComplete(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, complete)
}
