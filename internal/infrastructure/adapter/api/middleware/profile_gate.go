package middleware

import (
	"net/http"

	domainerr "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RequireCompleteProfile rejects point-earning and point-spending requests
// until the resident has filled every profile field. The usecases enforce the
// same gate inside their transactions; this middleware just fails fast.
func RequireCompleteProfile(profiles usecase.ProfileUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Missing bearer token",
			})
			return
		}

		complete, err := profiles.IsProfileComplete(c.Request.Context(), identity.UserID)
		if err != nil {
			logger.Error("Profile gate check failed", map[string]any{
				"user_id": identity.UserID,
				"error":   err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(err),
				Message: "Internal server error",
			})
			return
		}

		if !complete {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrIncompleteProfile),
				Message: "Complete your profile before earning or spending points",
			})
			return
		}

		c.Next()
	}
}
