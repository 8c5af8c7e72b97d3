package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, now func() time.Time) *Manager {
	t.Helper()
	m, err := NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	return m.WithClock(now)
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager("", "r", time.Minute, time.Minute)
	assert.Error(t, err)
	_, err = NewManager("same", "same", time.Minute, time.Minute)
	assert.Error(t, err)
	_, err = NewManager("a", "r", 0, time.Minute)
	assert.Error(t, err)
}

func TestMintAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newManager(t, fixedClock(now))

	for _, kind := range []Kind{KindAccess, KindRefresh} {
		tok, exp, err := m.Mint(kind, "acc-1", "u@test.com")
		require.NoError(t, err)
		assert.Equal(t, now.Add(m.TTL(kind)), exp)

		c, err := m.Verify(kind, tok)
		require.NoError(t, err, kind)
		assert.Equal(t, "acc-1", c.AccountID())
		assert.Equal(t, "u@test.com", c.Email)
		assert.Equal(t, kind, c.Type)
		assert.NotEmpty(t, c.ID)
	}
}

func TestMint_UniquePerCall(t *testing.T) {
	t.Parallel()

	m := newManager(t, fixedClock(time.Now()))
	a, _, err := m.Mint(KindRefresh, "acc", "e@x.y")
	require.NoError(t, err)
	b, _, err := m.Mint(KindRefresh, "acc", "e@x.y")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "tokens minted in the same second must differ")
}

func TestVerify_KindMismatch(t *testing.T) {
	t.Parallel()

	m := newManager(t, fixedClock(time.Now()))
	access, _, err := m.Mint(KindAccess, "acc", "e@x.y")
	require.NoError(t, err)

	_, err = m.Verify(KindRefresh, access)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_TypeClaimChecked(t *testing.T) {
	t.Parallel()

	m := newManager(t, fixedClock(time.Now()))
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Type: KindRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	// Signed with the access secret but claiming to be a refresh token.
	s, err := forged.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = m.Verify(KindAccess, s)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	m := newManager(t, func() time.Time { return clock })

	tok, _, err := m.Mint(KindAccess, "acc", "e@x.y")
	require.NoError(t, err)

	clock = now.Add(16 * time.Minute)
	_, err = m.Verify(KindAccess, tok)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_WrongSecretAndGarbage(t *testing.T) {
	t.Parallel()

	m := newManager(t, fixedClock(time.Now()))
	other, err := NewManager("other-access", "other-refresh", time.Minute, time.Hour)
	require.NoError(t, err)

	tok, _, err := other.Mint(KindAccess, "acc", "e@x.y")
	require.NoError(t, err)

	for _, in := range []string{tok, "", "not.a.jwt", "abc"} {
		_, err := m.Verify(KindAccess, in)
		assert.ErrorIs(t, err, common.ErrInvalidToken, in)
		assert.False(t, errors.Is(err, common.ErrTokenExpired), in)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	m := newManager(t, fixedClock(time.Now()))
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		Type: KindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = m.Verify(KindAccess, s)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestClaimsContext(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithClaims(context.Background(), &Claims{Email: "e@x.y"})
	c, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "e@x.y", c.Email)
}
