package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "session.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStore_EmptyOnFreshInstall(t *testing.T) {
	s, _ := openTemp(t)
	sess, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Session{}, sess)
}

func TestStore_SaveLoadSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)

	want := Session{Email: "a@b.co", AccountID: "acc", AccessToken: "at", RefreshToken: "rt"}
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SaveRemovesEmptyFields(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)

	require.NoError(t, s.Save(ctx, Session{Email: "a@b.co", PendingAccountID: "acc"}))
	require.NoError(t, s.Save(ctx, Session{Email: "a@b.co", AccessToken: "at"}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.PendingAccountID)
	assert.Equal(t, "at", got.AccessToken)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)

	require.NoError(t, s.Save(ctx, Session{Email: "a@b.co", RefreshToken: "rt"}))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Session{}, got)
}
