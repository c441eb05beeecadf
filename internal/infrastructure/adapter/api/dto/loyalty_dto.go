package dto

import (
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// CouponResponse represents a catalog offer
type CouponResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Cost           int64     `json:"cost"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// NewCouponResponse maps a catalog coupon to its API representation
func NewCouponResponse(coupon *entity.Coupon) CouponResponse {
	return CouponResponse{
		ID:             coupon.ID,
		Title:          coupon.Title,
		Description:    coupon.Description,
		Cost:           coupon.Cost,
		ExpirationDate: coupon.ExpirationDate,
	}
}

// PurchaseResponse represents a committed coupon purchase
type PurchaseResponse struct {
	OwnedCouponID string `json:"ownedCouponId"`
	CouponTitle   string `json:"couponTitle"`
	UniqueCode    string `json:"uniqueCode"`
	ResultBalance int64  `json:"resultBalance"`
}

// OwnedCouponResponse represents a purchased coupon with catalog metadata
type OwnedCouponResponse struct {
	ID             string     `json:"id"`
	CouponID       string     `json:"couponId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	UniqueCode     string     `json:"uniqueCode"`
	PurchaseDate   time.Time  `json:"purchaseDate"`
	ExpirationDate time.Time  `json:"expirationDate"`
	Used           bool       `json:"used"`
	ValidatedAt    *time.Time `json:"validatedAt,omitempty"`
}

// NewOwnedCouponResponse maps an owned coupon view to its API representation
func NewOwnedCouponResponse(view *usecase.OwnedCouponView) OwnedCouponResponse {
	return OwnedCouponResponse{
		ID:             view.OwnedCoupon.ID,
		CouponID:       view.OwnedCoupon.CouponID,
		Title:          view.Coupon.Title,
		Description:    view.Coupon.Description,
		UniqueCode:     view.OwnedCoupon.UniqueCode,
		PurchaseDate:   view.OwnedCoupon.PurchaseDate,
		ExpirationDate: view.Coupon.ExpirationDate,
		Used:           view.OwnedCoupon.Used,
		ValidatedAt:    view.OwnedCoupon.ValidatedAt,
	}
}

// RedeemRequest carries the redemption code a validator scanned
type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// RedemptionResponse represents a successful code validation
type RedemptionResponse struct {
	CouponID       string    `json:"couponId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ExpirationDate time.Time `json:"expirationDate"`
	ValidatedAt    time.Time `json:"validatedAt"`
}

// LedgerEntryResponse represents one ledger entry in a statement
type LedgerEntryResponse struct {
	ID          uint64    `json:"id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Reference   string    `json:"reference,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StatementResponse represents a user's points statement
type StatementResponse struct {
	UserID  string                `json:"userId"`
	Balance int64                 `json:"balance"`
	Entries []LedgerEntryResponse `json:"entries"`
}

// NewStatementResponse maps a statement result to its API representation
func NewStatementResponse(userID string, result *usecase.StatementResult) StatementResponse {
	entries := make([]LedgerEntryResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, LedgerEntryResponse{
			ID:          e.ID,
			Amount:      e.Amount,
			Description: e.Description,
			Reference:   e.Reference,
			CreatedAt:   e.CreatedAt,
		})
	}
	return StatementResponse{
		UserID:  userID,
		Balance: result.Balance,
		Entries: entries,
	}
}

// ReconciliationResponse reports stored balance versus ledger sum
type ReconciliationResponse struct {
	UserID     string `json:"userId"`
	Balance    int64  `json:"balance"`
	LedgerSum  int64  `json:"ledgerSum"`
	Drift      int64  `json:"drift"`
	Consistent bool   `json:"consistent"`
}
