package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	AccountID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session
// tokens. Tokens are stateless: validity is signature plus expiry, nothing
// is stored server-side and logout is a client-side discard.
type TokenService interface {
	// Generate issues a signed session token bound to an account.
	Generate(accountID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the token claims.
	Validate(tokenString string) (*Claims, error)

	// TokenTTL returns the configured session token lifetime.
	TokenTTL() time.Duration
}
