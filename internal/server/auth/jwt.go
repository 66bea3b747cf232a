// Package auth implements the stateless session tokens and password hashing
// used by the login flow and the access gate.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the identity bound to a session token. The user id travels
// in the standard "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// UserID returns the subject of the token.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenManager issues and verifies HS256 session tokens. It holds no mutable
// state, so one instance is shared by all requests.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customizes a TokenManager.
type Option func(*TokenManager)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *TokenManager) {
		m.now = now
	}
}

func NewTokenManager(secret []byte, ttl time.Duration, opts ...Option) *TokenManager {
	m := &TokenManager{secret: secret, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL is the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the given identity. Timestamps have one-second
// resolution; the issue time is truncated and expiry is exactly iat+ttl.
func (m *TokenManager) Issue(userID, email string) (string, error) {
	issuedAt := m.now().Truncate(time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature and expiry against the manager's clock.
// Malformed or forged tokens yield common.ErrInvalidToken; a genuine token
// past its expiry yields common.ErrTokenExpired.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, common.ErrInvalidToken
	}

	if m.now().After(claims.ExpiresAt.Time) {
		return nil, common.ErrTokenExpired
	}

	return claims, nil
}
