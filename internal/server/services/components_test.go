package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/memory"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneTimeSecretStore_IssueHashesSecret(t *testing.T) {
	store := memory.NewStore()
	clock := newTestClock()
	s := NewOneTimeSecretStore(store, store, cryptox.NewHasher(4), 3, clock.Now)
	ctx := context.Background()

	code, err := s.Issue(ctx, "acc", models.PurposeLoginStepUp, 5*time.Minute)
	require.NoError(t, err)
	assert.Len(t, code, OTPDigits)

	token, err := s.Issue(ctx, "acc", models.PurposePasswordReset, time.Hour)
	require.NoError(t, err)

	rows := store.Secrets("acc")
	require.Len(t, rows, 2)
	assert.NotEqual(t, code, rows[0].SecretHash)
	assert.True(t, cryptox.NewHasher(4).VerifySecret(code, rows[0].SecretHash))
	assert.Equal(t, cryptox.DigestToken(token), rows[1].SecretHash)
	assert.Equal(t, clock.Now().Add(5*time.Minute), rows[0].ExpiresAt)
	assert.Zero(t, rows[0].Attempts)
	assert.False(t, rows[0].Used)

	_, err = s.Issue(ctx, "acc", models.Purpose("bogus"), time.Minute)
	assert.Error(t, err)
}

func TestOneTimeSecretStore_Verify(t *testing.T) {
	store := memory.NewStore()
	s := NewOneTimeSecretStore(store, store, cryptox.NewHasher(4), 2, newTestClock().Now)
	ctx := context.Background()

	assert.ErrorIs(t, s.Verify(ctx, "acc", models.PurposeEnableStepUp, "123456"), common.ErrNotFoundSecret)

	code, err := s.Issue(ctx, "acc", models.PurposeEnableStepUp, time.Minute)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Verify(ctx, "acc", models.PurposeEnableStepUp, "not-it"), common.ErrInvalidSecret)
	assert.NoError(t, s.Verify(ctx, "acc", models.PurposeEnableStepUp, code))
	assert.ErrorIs(t, s.Verify(ctx, "acc", models.PurposeEnableStepUp, code), common.ErrNotFoundSecret)
}

func TestOneTimeSecretStore_ConsumeResetToken(t *testing.T) {
	store := memory.NewStore()
	s := NewOneTimeSecretStore(store, store, cryptox.NewHasher(4), 3, newTestClock().Now)
	ctx := context.Background()

	token, err := s.Issue(ctx, "acc", models.PurposePasswordReset, time.Hour)
	require.NoError(t, err)

	_, err = s.ConsumeResetToken(ctx, store.Conn(), "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidOrExpired)

	sec, err := s.ConsumeResetToken(ctx, store.Conn(), token)
	require.NoError(t, err)
	assert.Equal(t, "acc", sec.AccountID)
	assert.True(t, sec.Used)

	_, err = s.ConsumeResetToken(ctx, store.Conn(), token)
	assert.ErrorIs(t, err, common.ErrInvalidOrExpired)
}

func TestOneTimeSecretStore_IssueSupersedesOlder(t *testing.T) {
	store := memory.NewStore()
	clock := newTestClock()
	s := NewOneTimeSecretStore(store, store, cryptox.NewHasher(4), 3, clock.Now)
	ctx := context.Background()

	first, err := s.Issue(ctx, "acc", models.PurposePasswordReset, time.Hour)
	require.NoError(t, err)
	login, err := s.Issue(ctx, "acc", models.PurposeLoginStepUp, time.Minute)
	require.NoError(t, err)
	clock.Advance(time.Second)
	second, err := s.Issue(ctx, "acc", models.PurposePasswordReset, time.Hour)
	require.NoError(t, err)

	rows := store.Secrets("acc")
	require.Len(t, rows, 3)
	assert.Equal(t, clock.Now().Add(-time.Second), rows[0].ExpiresAt, "older reset token expired at reissue")
	assert.False(t, rows[0].Used)
	assert.True(t, rows[1].Active(clock.Now()), "other purposes untouched")
	assert.True(t, rows[2].Active(clock.Now()))

	_, err = s.ConsumeResetToken(ctx, store.Conn(), first)
	assert.ErrorIs(t, err, common.ErrInvalidOrExpired)
	_, err = s.ConsumeResetToken(ctx, store.Conn(), second)
	assert.NoError(t, err)
	assert.NoError(t, s.Verify(ctx, "acc", models.PurposeLoginStepUp, login))
}

func TestLedger_Check(t *testing.T) {
	store := memory.NewStore()
	clock := newTestClock()
	l := NewLedger(store, store, clock.Now)
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, store.Conn(), "acc", "h1", clock.Now().Add(time.Hour), testOrigin))
	require.NoError(t, l.Record(ctx, store.Conn(), "acc", "h2", clock.Now().Add(time.Hour), models.Origin{}))

	rec, err := l.Check(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "acc", rec.AccountID)
	assert.Equal(t, testOrigin.UserAgent, rec.UserAgent)

	_, err = l.Check(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, l.Revoke(ctx, "h1"))
	require.NoError(t, l.Revoke(ctx, "h1"))
	_, err = l.Check(ctx, "h1")
	assert.ErrorIs(t, err, common.ErrTokenRevoked)

	clock.Advance(time.Hour)
	_, err = l.Check(ctx, "h2")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)

	n, err := l.RevokeAll(ctx, store.Conn(), "acc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = l.RevokeAll(ctx, store.Conn(), "acc")
	require.NoError(t, err)
	assert.Zero(t, n)
}

type failingSink struct{}

func (failingSink) Write(context.Context, models.AuditEvent) error { return errors.New("sink down") }

func TestAuditRecorder(t *testing.T) {
	store := memory.NewStore()
	clock := newTestClock()
	r := NewAuditRecorder(newTestSink(store), nil, logging.NewDiscardLogger(), clock.Now)
	ctx := context.Background()

	r.Record(ctx, "", models.EventLoginFailed, false, map[string]any{"reason": "user_not_found"}, testOrigin)
	r.Failure(ctx, "acc", models.EventLoginFailed, "invalid_password", models.Origin{})

	ev := store.Events()
	require.Len(t, ev, 2)
	assert.Nil(t, ev[0].AccountID)
	assert.Equal(t, testOrigin.IPAddress, ev[0].IPAddress)
	assert.Equal(t, "acc", *ev[1].AccountID)
	assert.Equal(t, "invalid_password", ev[1].Metadata["reason"])
	assert.Equal(t, clock.Now(), ev[0].CreatedAt)

	id0, err := ulid.Parse(ev[0].ID)
	require.NoError(t, err)
	id1, err := ulid.Parse(ev[1].ID)
	require.NoError(t, err)
	assert.Equal(t, -1, id0.Compare(id1), "ids are monotonic")
}

func TestAuditRecorder_SinkFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	r := NewAuditRecorder(failingSink{}, nil, log, nil)

	assert.NotPanics(t, func() {
		r.Record(context.Background(), "acc", models.EventLogout, true, nil, models.Origin{})
	})
	assert.Contains(t, buf.String(), "audit write failed")
	assert.Contains(t, buf.String(), "sink down")
}

func TestValidation(t *testing.T) {
	assert.Equal(t, "a@b.co", NormalizeEmail("  A@B.co "))

	for _, ok := range []string{"u@test.com", "first.last+tag@example.co.uk"} {
		assert.NoError(t, ValidateEmail(ok), ok)
	}
	for _, bad := range []string{"", "plain", "a@b", "Name <a@b.co>", "a @b.co"} {
		assert.ErrorIs(t, ValidateEmail(bad), common.ErrValidation, bad)
	}

	for _, ok := range []string{"", "+15551234567", "+447911123456"} {
		assert.NoError(t, ValidatePhone(ok), ok)
	}
	for _, bad := range []string{"15551234567", "+0123", "+1", "+1234567890123456"} {
		assert.ErrorIs(t, ValidatePhone(bad), common.ErrValidation, bad)
	}

	for _, ok := range []string{"Secret123!", "Password123!", "aB3$efgh"} {
		assert.NoError(t, ValidatePassword(ok), ok)
	}
	for _, bad := range []string{"Sh0rt!", "nouppercase1!", "NOLOWERCASE1!", "NoDigits!!", "NoSpecial123", string(make([]byte, 73))} {
		assert.ErrorIs(t, ValidatePassword(bad), common.ErrValidation, bad)
	}
}
