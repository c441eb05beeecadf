package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInsufficientPoints.Error() != "insufficient points" {
		t.Errorf("ErrInsufficientPoints has unexpected message: %s", ErrInsufficientPoints.Error())
	}
	if ErrCouponAlreadyUsed.Error() != "coupon has already been used" {
		t.Errorf("ErrCouponAlreadyUsed has unexpected message: %s", ErrCouponAlreadyUsed.Error())
	}
	if ErrCouponCodeInvalid.Error() != "coupon code is invalid" {
		t.Errorf("ErrCouponCodeInvalid has unexpected message: %s", ErrCouponCodeInvalid.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientPoints", ErrInsufficientPoints, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"CouponExpired", ErrCouponExpired, 4004},
		{"CouponAlreadyUsed", ErrCouponAlreadyUsed, 4005},
		{"CouponCodeInvalid", ErrCouponCodeInvalid, 4006},
		{"IncompleteProfile", ErrIncompleteProfile, 4007},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"CouponNotFound", ErrCouponNotFound, 4041},
		{"ConcurrentModification", ErrConcurrentModification, 4230},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientPointsError(t *testing.T) {
	pointsErr := NewInsufficientPointsError("user-1", 60, 40)

	expectedErrMsg := "insufficient points for user user-1: required 60, available 40"
	if pointsErr.Error() != expectedErrMsg {
		t.Errorf("InsufficientPointsError.Error() = %s, want %s", pointsErr.Error(), expectedErrMsg)
	}

	if !errors.Is(pointsErr, ErrInsufficientPoints) {
		t.Errorf("errors.Is(pointsErr, ErrInsufficientPoints) = false, want true")
	}

	if ErrorCode(pointsErr) != CodeInsufficientPoints {
		t.Errorf("ErrorCode(pointsErr) = %d, want %d", ErrorCode(pointsErr), CodeInsufficientPoints)
	}
}

func TestRedemptionError(t *testing.T) {
	baseErr := ErrCouponAlreadyUsed
	redemptionErr := &RedemptionError{
		Code:        "abc-123",
		ValidatorID: "clerk-9",
		Reason:      "code already consumed",
		Err:         baseErr,
	}

	expectedErrMsg := "redemption failed for code abc-123 (validator: clerk-9): code already consumed - coupon has already been used"
	if redemptionErr.Error() != expectedErrMsg {
		t.Errorf("RedemptionError.Error() = %s, want %s", redemptionErr.Error(), expectedErrMsg)
	}

	if !errors.Is(redemptionErr, baseErr) {
		t.Errorf("errors.Is(redemptionErr, baseErr) = false, want true")
	}
}

func TestPreconditionClassification(t *testing.T) {
	for _, err := range []error{ErrInsufficientPoints, ErrCouponExpired, ErrCouponAlreadyUsed, ErrIncompleteProfile} {
		if !IsPreconditionError(err) {
			t.Errorf("IsPreconditionError(%v) = false, want true", err)
		}
	}
	if IsPreconditionError(ErrUserNotFound) {
		t.Errorf("IsPreconditionError(ErrUserNotFound) = true, want false")
	}
	if !IsNotFoundError(ErrCouponCodeInvalid) {
		t.Errorf("IsNotFoundError(ErrCouponCodeInvalid) = false, want true")
	}
}
