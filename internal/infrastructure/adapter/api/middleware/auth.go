package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/dto"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/auth"
	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key the verified identity is stored under
const identityKey = "identity"

// Authentication middleware verifies the bearer token and stores the
// asserted identity in the request context
func Authentication(verifier *auth.TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Missing bearer token",
			})
			return
		}

		identity, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Warn("Bearer token rejected", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid bearer token",
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the verified identity stored by Authentication
func IdentityFromContext(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}
