package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
// Subject carries the account id; ID carries the per-token jti.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// Issue creates a signed token for the account that expires one hour after issuance.
	Issue(accountID uuid.UUID, username, role string) (string, error)

	// Validate checks signature, algorithm, issuer, audience and expiry.
	Validate(tokenString string) (*Claims, error)
}
