package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientPoints     = 4001
	CodeInvalidAmount          = 4002
	CodeInvalidUserID          = 4003
	CodeCouponExpired          = 4004
	CodeCouponAlreadyUsed      = 4005
	CodeCouponCodeInvalid      = 4006
	CodeIncompleteProfile      = 4007
	CodeInvalidRating          = 4008
	CodeConstraintViolation    = 4009
	CodeUserNotFound           = 4040
	CodeCouponNotFound         = 4041
	CodeRecommendationNotFound = 4042
	CodeConcurrentModification = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientPoints is returned when a user's balance cannot cover a coupon's cost
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrInvalidAmount is returned when a ledger amount is zero or malformed
	ErrInvalidAmount = errors.New("invalid points amount")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidCouponID is returned when the coupon ID is empty
	ErrInvalidCouponID = errors.New("coupon ID cannot be empty")

	// ErrInvalidCouponCost is returned when a catalog entry carries a non-positive cost
	ErrInvalidCouponCost = errors.New("coupon cost must be positive")

	// ErrCouponExpired is returned when purchasing a coupon past its expiration date
	ErrCouponExpired = errors.New("coupon has expired")

	// ErrCouponAlreadyUsed is returned when a redemption code was already consumed
	ErrCouponAlreadyUsed = errors.New("coupon has already been used")

	// ErrCouponCodeInvalid is returned when a redemption code matches no owned coupon
	ErrCouponCodeInvalid = errors.New("coupon code is invalid")

	// ErrIncompleteProfile is returned when a point-earning or point-spending action
	// is attempted before the user's profile is complete
	ErrIncompleteProfile = errors.New("user profile is incomplete")

	// ErrInvalidRating is returned when a rating falls outside the 1-5 range
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCouponNotFound is returned when the requested catalog coupon doesn't exist
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrRecommendationNotFound is returned when the requested recommendation doesn't exist
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrConcurrentModification is returned when a conditional write lost a race
	// with another transaction; the operation may be retried
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateCode is returned when a minted redemption code collides with an
	// existing one
	ErrDuplicateCode = errors.New("redemption code already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrExternalService is returned when an external collaborator is unreachable
	ErrExternalService = errors.New("external service failure")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientPoints):
		return CodeInsufficientPoints
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrCouponExpired):
		return CodeCouponExpired
	case errors.Is(err, ErrCouponAlreadyUsed):
		return CodeCouponAlreadyUsed
	case errors.Is(err, ErrCouponCodeInvalid):
		return CodeCouponCodeInvalid
	case errors.Is(err, ErrIncompleteProfile):
		return CodeIncompleteProfile
	case errors.Is(err, ErrInvalidRating):
		return CodeInvalidRating
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrCouponNotFound):
		return CodeCouponNotFound
	case errors.Is(err, ErrRecommendationNotFound):
		return CodeRecommendationNotFound
	case errors.Is(err, ErrConcurrentModification):
		return CodeConcurrentModification
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// InsufficientPointsError provides detailed error information for a rejected purchase
type InsufficientPointsError struct {
	UserID  string
	Cost    int64
	Balance int64
}

// Error implements the error interface
func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points for user %s: required %d, available %d",
		e.UserID, e.Cost, e.Balance)
}

// Is checks if the target error is an ErrInsufficientPoints
func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientPointsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_points",
		"user_id":         e.UserID,
		"cost":            e.Cost,
		"current_balance": e.Balance,
		"error_code":      CodeInsufficientPoints,
	}
}

// NewInsufficientPointsError creates a new detailed insufficient points error
func NewInsufficientPointsError(userID string, cost, balance int64) error {
	return &InsufficientPointsError{
		UserID:  userID,
		Cost:    cost,
		Balance: balance,
	}
}

// RedemptionError represents an error raised while validating a coupon code
type RedemptionError struct {
	Code        string
	ValidatorID string
	Reason      string
	Err         error
}

// Error implements the error interface for RedemptionError
func (e *RedemptionError) Error() string {
	return fmt.Sprintf("redemption failed for code %s (validator: %s): %s - %v",
		e.Code, e.ValidatorID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *RedemptionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RedemptionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "redemption_error",
		"code":         e.Code,
		"validator_id": e.ValidatorID,
		"reason":       e.Reason,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewRedemptionError creates a detailed redemption error
func NewRedemptionError(code, validatorID, reason string, err error) error {
	return &RedemptionError{
		Code:        code,
		ValidatorID: validatorID,
		Reason:      reason,
		Err:         err,
	}
}

// IsInsufficientPointsError checks if the error is related to an uncovered cost
func IsInsufficientPointsError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCouponNotFound) ||
		errors.Is(err, ErrRecommendationNotFound) ||
		errors.Is(err, ErrCouponCodeInvalid)
}

// IsPreconditionError checks if the error rejects an operation whose
// preconditions do not hold; these surface to the caller as-is
func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints) ||
		errors.Is(err, ErrCouponExpired) ||
		errors.Is(err, ErrCouponAlreadyUsed) ||
		errors.Is(err, ErrIncompleteProfile)
}

// IsConcurrentModificationError checks if the error is a lost conditional write
func IsConcurrentModificationError(err error) bool {
	return errors.Is(err, ErrConcurrentModification)
}
