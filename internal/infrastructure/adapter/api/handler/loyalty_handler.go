package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/dto"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// LoyaltyHandler handles coupon and points HTTP requests
type LoyaltyHandler struct {
	loyaltyUseCase usecase.LoyaltyUseCase
	statementLimit int
	logger         coreport.Logger
}

// NewLoyaltyHandler creates a new loyalty handler instance. statementLimit is
// the page size used when a statement request does not specify one.
func NewLoyaltyHandler(loyaltyUseCase usecase.LoyaltyUseCase, statementLimit int, logger coreport.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyUseCase: loyaltyUseCase,
		statementLimit: statementLimit,
		logger:         logger,
	}
}

// ListCoupons handles the GET /coupons endpoint
func (h *LoyaltyHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.loyaltyUseCase.ListAvailableCoupons(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing coupons", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	responses := make([]dto.CouponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		responses = append(responses, dto.NewCouponResponse(coupon))
	}
	c.JSON(http.StatusOK, responses)
}

// PurchaseCoupon handles the POST /coupons/:couponId/purchase endpoint
func (h *LoyaltyHandler) PurchaseCoupon(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)
	couponID := c.Param("couponId")

	result, err := h.loyaltyUseCase.PurchaseCoupon(c.Request.Context(), identity.UserID, couponID)
	if err != nil {
		h.logger.Warn("Coupon purchase rejected", map[string]any{
			"user_id":   identity.UserID,
			"coupon_id": couponID,
			"error":     err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PurchaseResponse{
		OwnedCouponID: result.OwnedCouponID,
		CouponTitle:   result.CouponTitle,
		UniqueCode:    result.UniqueCode,
		ResultBalance: result.ResultBalance,
	})
}

// ListOwnedCoupons handles the GET /me/coupons endpoint
func (h *LoyaltyHandler) ListOwnedCoupons(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	views, err := h.loyaltyUseCase.ListOwnedCoupons(c.Request.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("Error listing owned coupons", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	responses := make([]dto.OwnedCouponResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, dto.NewOwnedCouponResponse(view))
	}
	c.JSON(http.StatusOK, responses)
}

// RedeemCoupon handles the POST /coupons/redeem endpoint
func (h *LoyaltyHandler) RedeemCoupon(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Redemption code is required",
		})
		return
	}

	result, err := h.loyaltyUseCase.RedeemCoupon(c.Request.Context(), req.Code, identity.UserID)
	if err != nil {
		h.logger.Warn("Coupon redemption rejected", map[string]any{
			"validator_id": identity.UserID,
			"error":        err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RedemptionResponse{
		CouponID:       result.CouponID,
		Title:          result.Title,
		Description:    result.Description,
		ExpirationDate: result.ExpirationDate,
		ValidatedAt:    result.ValidatedAt,
	})
}

// GetPoints handles the GET /me/points endpoint
func (h *LoyaltyHandler) GetPoints(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	limit := h.statementLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	result, err := h.loyaltyUseCase.GetStatement(c.Request.Context(), identity.UserID, limit)
	if err != nil {
		h.logger.Error("Error getting points statement", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatementResponse(identity.UserID, result))
}

// ReconcilePoints handles the GET /me/points/reconcile endpoint
func (h *LoyaltyHandler) ReconcilePoints(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	result, err := h.loyaltyUseCase.ReconcileBalance(c.Request.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("Error reconciling points", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReconciliationResponse{
		UserID:     result.UserID,
		Balance:    result.Balance,
		LedgerSum:  result.LedgerSum,
		Drift:      result.Drift,
		Consistent: result.Consistent(),
	})
}
