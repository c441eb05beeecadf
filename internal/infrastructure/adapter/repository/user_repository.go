package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(userModel.ID, userModel.Email, userModel.DisplayName, r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create user entity", map[string]any{
			"user_id": userModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.PhotoURL = userModel.PhotoURL
	user.Role = userModel.Role
	user.SetPoints(userModel.Balance)
	user.Profile = entity.Profile{
		FullName:     userModel.FullName,
		Condominium:  userModel.Condominium,
		PostalCode:   userModel.PostalCode,
		Street:       userModel.Street,
		District:     userModel.District,
		City:         userModel.City,
		State:        userModel.State,
		StreetNumber: userModel.StreetNumber,
		Whatsapp:     userModel.Whatsapp,
	}
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

// entityToUpdates builds the column map persisted by Update. The balance
// column is deliberately absent: Update runs on entities read without a
// lock, and writing a stale balance would undo a concurrently committed
// debit. Only AdjustPoints, inside a unit of work, writes balance.
func (r *UserRepository) entityToUpdates(user *entity.User) map[string]interface{} {
	return map[string]interface{}{
		"email":         user.Email,
		"display_name":  user.DisplayName,
		"photo_url":     user.PhotoURL,
		"role":          user.Role,
		"full_name":     user.Profile.FullName,
		"condominium":   user.Profile.Condominium,
		"postal_code":   user.Profile.PostalCode,
		"street":        user.Profile.Street,
		"district":      user.Profile.District,
		"city":          user.Profile.City,
		"state":         user.Profile.State,
		"street_number": user.Profile.StreetNumber,
		"whatsapp":      user.Profile.Whatsapp,
		"updated_at":    user.UpdatedAt,
	}
}

// handleDatabaseError logs the failure and maps it onto a domain error
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	return r.errorMapper.MapError(err, EntityTypeUser)
}

// GetByID retrieves a user by the identity provider's id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "id = ?", id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// GetByIDForUpdate retrieves a user while holding an exclusive row lock.
// Only meaningful inside a transaction.
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.User, error) {
	r.logger.Debug("Getting user by ID with row lock", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := lockForUpdate(r.db.WithContext(ctx)).
		First(&userModel, "id = ?", id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// Create creates a new user record
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	userModel := model.User{
		ID:           user.ID,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		PhotoURL:     user.PhotoURL,
		Role:         user.Role,
		Balance:      user.Points(),
		FullName:     user.Profile.FullName,
		Condominium:  user.Profile.Condominium,
		PostalCode:   user.Profile.PostalCode,
		Street:       user.Profile.Street,
		District:     user.Profile.District,
		City:         user.Profile.City,
		State:        user.Profile.State,
		StreetNumber: user.Profile.StreetNumber,
		Whatsapp:     user.Profile.Whatsapp,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)

	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// Update persists identity and profile fields. It never touches the
// balance column; point movements go through AdjustPoints.
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Updating user", map[string]any{
		"user_id": user.ID,
	})

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(r.entityToUpdates(user))

	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, user.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	return nil
}

// AdjustPoints applies a signed balance delta under an exclusive row lock.
// The committed balance is never allowed to go negative; the caller appends
// the matching ledger entry in the same transaction.
func (r *UserRepository) AdjustPoints(ctx context.Context, userID string, delta int64) (*entity.User, error) {
	r.logger.Debug("Adjusting user points", map[string]any{
		"user_id": userID,
		"delta":   delta,
	})

	var userModel model.User
	result := lockForUpdate(r.db.WithContext(ctx)).
		First(&userModel, "id = ?", userID)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user for points adjustment", result.Error, userID)
	}

	newBalance := userModel.Balance + delta
	if newBalance < 0 {
		r.logger.Warn("Insufficient points for adjustment", map[string]any{
			"user_id":         userID,
			"current_balance": userModel.Balance,
			"delta":           delta,
		})
		return nil, errs.NewInsufficientPointsError(userID, -delta, userModel.Balance)
	}

	userModel.Balance = newBalance
	userModel.UpdatedAt = r.timeProvider.Now()

	result = r.db.WithContext(ctx).Model(&userModel).Updates(map[string]interface{}{
		"balance":    userModel.Balance,
		"updated_at": userModel.UpdatedAt,
	})

	if result.Error != nil {
		return nil, r.handleDatabaseError("applying points adjustment", result.Error, userID)
	}

	user, err := r.modelToEntity(&userModel)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Points adjusted", map[string]any{
		"user_id":     userID,
		"delta":       delta,
		"new_balance": newBalance,
	})

	return user, nil
}
