package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims mirrors the payload of the bearer token issued by the API.
// The token is opaque to this client for authorization purposes; claims
// are decoded without verification and used only for display and expiry
// hints. Server-side validation remains authoritative.
type TokenClaims struct {
	UserID    int      `json:"userId"`
	Roles     []string `json:"roles"`
	UserName  string   `json:"userName"`
	UserEmail string   `json:"userEmail"`
	UserGroup string   `json:"userGroup"`
	jwt.RegisteredClaims
}

// DecodeTokenClaims parses the bearer token payload without verifying
// its signature.
func DecodeTokenClaims(token string) (*TokenClaims, error) {
	var claims TokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("decode token claims: %w", err)
	}
	return &claims, nil
}

// Expiry returns the token expiry, or the zero time if the claim is
// absent.
func (c *TokenClaims) Expiry() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}
