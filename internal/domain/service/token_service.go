package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens. The subject is
// the account email; no other identity data is embedded, so every request
// re-resolves the account against the store.
type Claims struct {
	jwt.RegisteredClaims
}

// Email returns the token subject.
func (c *Claims) Email() string {
	return c.Subject
}

// TokenService defines the interface for generating and validating access
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-bounded access token for the given
	// account email.
	Generate(email string) (string, error)

	// Validate checks a token string. Expired, tampered, or otherwise
	// malformed tokens return an error.
	Validate(tokenString string) (*Claims, error)
}
