package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed session token embedding the user id.
	Generate(userID string) (string, error)

	// Validate checks signature, shape and expiry of a token string and
	// returns its claims. Any failure mode yields an error.
	Validate(tokenString string) (*Claims, error)

	// TTL returns the configured token lifetime, used by the delivery
	// layer for the session cookie's max age.
	TTL() time.Duration
}
