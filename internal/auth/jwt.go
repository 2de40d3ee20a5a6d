// Package auth issues and verifies the bearer tokens the API runs on.
// Access tokens are HS256 JWTs whose subject is the user id; refresh
// tokens are opaque and live in the database (see core/users).
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const defaultIssuer = "agora"

// Provider signs and verifies access tokens with a shared secret
type Provider struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewProvider creates a token provider. ttl <= 0 defaults to one hour.
func NewProvider(secret string, ttl time.Duration) *Provider {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Provider{
		secret: []byte(secret),
		issuer: defaultIssuer,
		ttl:    ttl,
	}
}

// Issue mints an access token for the user.
func (p *Provider) Issue(userID int64) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(p.ttl)

	token, err := jwt.NewBuilder().
		Issuer(p.issuer).
		Subject(strconv.FormatInt(userID, 10)).
		IssuedAt(now).
		Expiration(expiresAt).
		Build()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, p.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), expiresAt, nil
}

// Verify checks signature, issuer and expiry, and returns the user id
// carried in the subject claim.
func (p *Provider) Verify(raw string) (int64, error) {
	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, p.secret),
		jwt.WithIssuer(p.issuer),
		jwt.WithValidate(true),
	)
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	userID, err := strconv.ParseInt(token.Subject(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject: %w", err)
	}
	return userID, nil
}
