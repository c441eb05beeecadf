package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	applogger "github.com/condoindica/condoindica-api/internal/infrastructure/adapter/logger"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/model"
	coremocks "github.com/condoindica/condoindica-api/mocks/port/core"
)

func testUserRepository(t *testing.T) (*UserRepository, *entity.User) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	repo := NewUserRepository(nil, mockTime, applogger.NewNoopLogger())

	user, err := entity.NewUser("uid-1", "maria@example.com", "Maria", mockTime)
	require.NoError(t, err)
	return repo, user
}

func TestEntityToUpdates(t *testing.T) {
	t.Run("Profile save never writes the balance column", func(t *testing.T) {
		repo, user := testUserRepository(t)
		user.SetPoints(100)
		user.Profile.FullName = "Maria Souza"

		updates := repo.entityToUpdates(user)

		// Update runs on entities read without a lock. If the balance
		// were included here, a purchase committing between the read and
		// the profile save would be silently undone.
		assert.NotContains(t, updates, "balance")
	})

	t.Run("Identity and profile columns are written", func(t *testing.T) {
		repo, user := testUserRepository(t)
		user.Profile.FullName = "Maria Souza"
		user.Profile.Whatsapp = "(11) 98765-4321"

		updates := repo.entityToUpdates(user)

		assert.Equal(t, "maria@example.com", updates["email"])
		assert.Equal(t, "Maria", updates["display_name"])
		assert.Equal(t, "Maria Souza", updates["full_name"])
		assert.Equal(t, "(11) 98765-4321", updates["whatsapp"])
		assert.Contains(t, updates, "updated_at")
	})
}

func TestLockForUpdate(t *testing.T) {
	t.Run("Emits a FOR UPDATE row lock", func(t *testing.T) {
		db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
		require.NoError(t, err)

		var users []model.User
		tx := lockForUpdate(db.Model(&model.User{}).Where("id = ?", "uid-1")).Find(&users)

		require.NoError(t, tx.Error)
		assert.Contains(t, tx.Statement.SQL.String(), "FOR UPDATE")
	})

	t.Run("Unlocked queries carry no lock clause", func(t *testing.T) {
		db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
		require.NoError(t, err)

		var users []model.User
		tx := db.Model(&model.User{}).Where("id = ?", "uid-1").Find(&users)

		require.NoError(t, tx.Error)
		assert.NotContains(t, tx.Statement.SQL.String(), "FOR UPDATE")
	})
}
