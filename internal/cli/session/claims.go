package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read out of an access token without the
// signing key. Display only: requests are never gated on these fields.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// InspectToken decodes the access token's claims without verifying the
// signature. Verification is the backend's job; the CLI only shows the
// expiry in `summarly whoami`.
func InspectToken(accessToken string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	info := &TokenInfo{}

	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}
