// Package auth mints and verifies the signed access and refresh tokens that
// carry a session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind distinguishes access tokens from refresh tokens. Each kind is signed
// with its own secret and carries its kind in the typ claim.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims is the token payload: registered claims (sub, iat, exp, jti) plus
// the account email and the token kind.
type Claims struct {
	Email string `json:"email"`
	Type  Kind   `json:"typ"`
	jwt.RegisteredClaims
}

// AccountID returns the subject.
func (c *Claims) AccountID() string {
	return c.Subject
}

type keyConfig struct {
	secret []byte
	ttl    time.Duration
}

// Manager mints and verifies tokens of both kinds.
type Manager struct {
	keys map[Kind]keyConfig
	now  func() time.Time
}

// NewManager returns a Manager. The secrets must be distinct and non-empty.
func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*Manager, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, errors.New("token secrets must not be empty")
	}
	if accessSecret == refreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	return &Manager{
		keys: map[Kind]keyConfig{
			KindAccess:  {secret: []byte(accessSecret), ttl: accessTTL},
			KindRefresh: {secret: []byte(refreshSecret), ttl: refreshTTL},
		},
		now: time.Now,
	}, nil
}

// WithClock replaces the time source. Intended for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// TTL returns the configured lifetime of kind.
func (m *Manager) TTL(kind Kind) time.Duration {
	return m.keys[kind].ttl
}

// Mint signs a new token of the given kind for accountID.
func (m *Manager) Mint(kind Kind, accountID, email string) (string, time.Time, error) {
	k, ok := m.keys[kind]
	if !ok {
		return "", time.Time{}, fmt.Errorf("unknown token kind %q", kind)
	}

	now := m.now()
	exp := now.Add(k.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		Type:  kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	})

	s, err := token.SignedString(k.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return s, exp, nil
}

// Verify checks signature, algorithm, expiry and kind. Every failure matches
// common.ErrInvalidToken; expiry additionally matches common.ErrTokenExpired.
func (m *Manager) Verify(kind Kind, tokenString string) (*Claims, error) {
	k, ok := m.keys[kind]
	if !ok {
		return nil, common.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return k.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, common.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Type != kind || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

type claimsKey struct{}

// ContextWithClaims stores verified access claims on ctx.
func ContextWithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFromContext returns the claims stored by ContextWithClaims.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok && c != nil
}
