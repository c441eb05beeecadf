package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	appconfig "github.com/condoindica/condoindica-api/internal/infrastructure/config"
)

// Identity is what the identity provider asserts about a signed-in user
type Identity struct {
	UserID   string
	Email    string
	Name     string
	PhotoURL string
}

// TokenVerifier validates bearer tokens issued by the identity provider
type TokenVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenVerifier creates a verifier from the auth configuration
func NewTokenVerifier(cfg appconfig.AuthConfig) *TokenVerifier {
	return &TokenVerifier{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
	}
}

type identityClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// Verify parses and validates a bearer token and returns the asserted identity
func (v *TokenVerifier) Verify(tokenString string) (*Identity, error) {
	claims := &identityClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidRequest, err)
	}
	if !token.Valid {
		return nil, errs.ErrInvalidRequest
	}
	if claims.Subject == "" {
		return nil, errs.ErrInvalidUserID
	}

	return &Identity{
		UserID:   claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		PhotoURL: claims.Picture,
	}, nil
}
