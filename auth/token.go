// token.go - Issues and validates signed, time-limited bearer tokens
//
// Tokens are HS256 JWTs. The only claims the application relies on are
// "sub" (the username) and "exp" (expiry, seconds since the epoch).

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when Issue is called without a positive ttl.
const DefaultTokenTTL = 30 * time.Minute

// ErrInvalidToken covers every validation failure: bad signature, malformed
// structure, wrong algorithm, missing or passed expiry.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager signs and verifies tokens with one shared secret.
type TokenManager struct {
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// Option customises a TokenManager.
type Option func(*TokenManager)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *TokenManager) { m.now = now }
}

// NewTokenManager returns a manager signing with secret. A non-positive
// defaultTTL falls back to DefaultTokenTTL.
func NewTokenManager(secret string, defaultTTL time.Duration, opts ...Option) *TokenManager {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}
	m := &TokenManager{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue copies claims, adds "exp" = now (UTC) + ttl and returns the signed token.
// The caller's map is not modified.
func (m *TokenManager) Issue(claims map[string]any, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	mc := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		mc[k] = v
	}
	mc["exp"] = m.now().UTC().Add(ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry and returns the token's claims.
func (m *TokenManager) Validate(tokenString string) (jwt.MapClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
