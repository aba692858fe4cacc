// Package service defines the interfaces of the external capabilities the use cases rely on.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess is the type claim carried by access tokens.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID string
	Type   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user.
	GenerateToken(userID string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature, type and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
