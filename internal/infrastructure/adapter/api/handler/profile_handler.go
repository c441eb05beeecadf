package handler

import (
	"net/http"

	domainerr "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/dto"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles user identity and profile HTTP requests
type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(profileUseCase usecase.ProfileUseCase, logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// SyncUser handles the POST /auth/sync endpoint. The identity provider's
// token carries everything we need; no request body.
func (h *ProfileHandler) SyncUser(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Missing bearer token",
		})
		return
	}

	user, err := h.profileUseCase.SyncUser(c.Request.Context(), usecase.SyncUserInput{
		UserID:      identity.UserID,
		Email:       identity.Email,
		DisplayName: identity.Name,
		PhotoURL:    identity.PhotoURL,
	})
	if err != nil {
		h.logger.Error("Error syncing user", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}

// GetProfile handles the GET /profile endpoint
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	user, err := h.profileUseCase.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("Error getting profile", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}

// SaveProfile handles the PUT /profile endpoint
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid profile payload",
		})
		return
	}

	user, err := h.profileUseCase.SaveProfile(c.Request.Context(), identity.UserID, usecase.SaveProfileInput{
		FullName:     req.FullName,
		Condominium:  req.Condominium,
		PostalCode:   req.PostalCode,
		Street:       req.Street,
		District:     req.District,
		City:         req.City,
		State:        req.State,
		StreetNumber: req.StreetNumber,
		Whatsapp:     req.Whatsapp,
	})
	if err != nil {
		h.logger.Error("Error saving profile", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(user))
}
