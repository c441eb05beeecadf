package usecase

import (
	"context"
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// PurchaseResult contains info about a committed coupon purchase
type PurchaseResult struct {
	OwnedCouponID string `json:"ownedCouponId"`
	CouponTitle   string `json:"couponTitle"`
	UniqueCode    string `json:"uniqueCode"`
	ResultBalance int64  `json:"resultBalance"`
}

// RedemptionResult carries the catalog metadata shown to the validator
// after a successful code flip
type RedemptionResult struct {
	CouponID       string    `json:"couponId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ExpirationDate time.Time `json:"expirationDate"`
	ValidatedAt    time.Time `json:"validatedAt"`
}

// OwnedCouponView joins an owned coupon with its catalog metadata
type OwnedCouponView struct {
	OwnedCoupon *entity.OwnedCoupon
	Coupon      *entity.Coupon
}

// StatementResult is a user's points statement: current balance plus the
// ledger entries that produced it
type StatementResult struct {
	Balance int64
	Entries []*entity.PointsTransaction
}

// ReconciliationResult reports whether a user's stored balance matches the
// sum of their ledger entries
type ReconciliationResult struct {
	UserID    string `json:"userId"`
	Balance   int64  `json:"balance"`
	LedgerSum int64  `json:"ledgerSum"`
	Drift     int64  `json:"drift"`
}

// Consistent reports whether the stored balance and the ledger agree
func (r *ReconciliationResult) Consistent() bool {
	return r.Drift == 0
}

// LoyaltyUseCase defines the points-spending side of the loyalty ledger:
// buying coupons, validating redemption codes and inspecting the ledger
type LoyaltyUseCase interface {
	// PurchaseCoupon atomically debits the user's balance, appends a ledger
	// entry and mints an owned coupon with a fresh single-use code
	PurchaseCoupon(ctx context.Context, userID, couponID string) (*PurchaseResult, error)

	// RedeemCoupon finds an owned coupon by its code across all owners and
	// marks it used exactly once on behalf of the validating actor
	RedeemCoupon(ctx context.Context, code, validatorID string) (*RedemptionResult, error)

	// AwardPoints credits a user and appends the matching ledger entry in
	// one transaction
	AwardPoints(ctx context.Context, userID string, amount int64, description string) (*entity.User, error)

	// ListAvailableCoupons returns unexpired catalog entries
	ListAvailableCoupons(ctx context.Context) ([]*entity.Coupon, error)

	// ListOwnedCoupons returns the user's purchased coupons with catalog metadata
	ListOwnedCoupons(ctx context.Context, userID string) ([]*OwnedCouponView, error)

	// GetStatement returns the user's balance and ledger entries, newest first
	GetStatement(ctx context.Context, userID string, limit int) (*StatementResult, error)

	// ReconcileBalance compares the stored balance against the ledger sum
	ReconcileBalance(ctx context.Context, userID string) (*ReconciliationResult, error)
}
