package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
)

func completeProfile() Profile {
	return Profile{
		FullName:     "Maria Souza",
		Condominium:  "Residencial Aurora",
		PostalCode:   "01310-100",
		Street:       "Avenida Paulista",
		District:     "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
		StreetNumber: "1578",
		Whatsapp:     "(11) 98765-4321",
	}
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("uid-1", "maria@example.com", "Maria", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "uid-1", user.ID)
		assert.Equal(t, "maria@example.com", user.Email)
		assert.Equal(t, int64(0), user.Points())
		assert.Equal(t, "resident", user.Role)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.False(t, user.ProfileComplete())
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		user, err := NewUser("", "maria@example.com", "Maria", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})
}

func TestProfileComplete(t *testing.T) {
	t.Run("All fields filled", func(t *testing.T) {
		assert.True(t, completeProfile().Complete())
	})

	t.Run("Each missing field makes the profile incomplete", func(t *testing.T) {
		clear := []func(*Profile){
			func(p *Profile) { p.FullName = "" },
			func(p *Profile) { p.Condominium = "" },
			func(p *Profile) { p.PostalCode = "" },
			func(p *Profile) { p.Street = "" },
			func(p *Profile) { p.District = "" },
			func(p *Profile) { p.City = "" },
			func(p *Profile) { p.State = "" },
			func(p *Profile) { p.StreetNumber = "" },
			func(p *Profile) { p.Whatsapp = "" },
		}

		for i, clearField := range clear {
			p := completeProfile()
			clearField(&p)
			assert.Falsef(t, p.Complete(), "field %d cleared, profile should be incomplete", i)
		}
	})
}

func TestUserCreditAndDebit(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	laterTime := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)

	t.Run("Credit increases balance and touches UpdatedAt", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Once()

		user, _ := NewUser("uid-1", "maria@example.com", "Maria", mockTime)

		mockTime.On("Now").Return(laterTime).Once()
		require.NoError(t, user.Credit(20, mockTime))

		assert.Equal(t, int64(20), user.Points())
		assert.Equal(t, laterTime, user.UpdatedAt)
	})

	t.Run("Debit below balance succeeds", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime)

		user, _ := NewUser("uid-1", "maria@example.com", "Maria", mockTime)
		user.SetPoints(50)

		require.NoError(t, user.Debit(30, mockTime))
		assert.Equal(t, int64(20), user.Points())
	})

	t.Run("Debit beyond balance fails and leaves balance unchanged", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime)

		user, _ := NewUser("uid-1", "maria@example.com", "Maria", mockTime)
		user.SetPoints(50)

		err := user.Debit(60, mockTime)
		assert.ErrorIs(t, err, errs.ErrInsufficientPoints)
		assert.Equal(t, int64(50), user.Points())
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime)

		user, _ := NewUser("uid-1", "maria@example.com", "Maria", mockTime)

		assert.ErrorIs(t, user.Credit(0, mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, user.Debit(-5, mockTime), errs.ErrInvalidAmount)
	})

	t.Run("CanSpend mirrors the balance check", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime)

		user, _ := NewUser("uid-1", "maria@example.com", "Maria", mockTime)
		user.SetPoints(100)

		assert.True(t, user.CanSpend(100))
		assert.False(t, user.CanSpend(101))
	})
}
