package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionService_MissingDependency(t *testing.T) {
	_, err := NewSessionService(Config{OTPTTL: 1, ResetTTL: 1}, Dependencies{})
	assert.Error(t, err)
}

func TestRegisterThenLogin_DirectSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := h.svc.Register(ctx, "  U@Test.com ", testPassword, testPhone, testOrigin)
	require.NoError(t, err)
	assert.Equal(t, testEmail, p.Email)
	assert.True(t, p.IsActive)
	assert.False(t, p.StepUpEnabled)

	res, err := h.svc.Login(ctx, testEmail, testPassword, testOrigin)
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, res.State)
	assert.Equal(t, p.ID, res.AccountID)
	require.NotNil(t, res.Tokens)

	c, err := h.tokens.Verify(auth.KindAccess, res.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, p.ID, c.AccountID())

	rec, ok := h.store.RefreshToken(cryptox.DigestToken(res.Tokens.RefreshToken))
	require.True(t, ok, "refresh digest must be in the ledger")
	assert.Equal(t, testOrigin.IPAddress, rec.IPAddress)
	assert.NotContains(t, rec.TokenHash, res.Tokens.RefreshToken)

	assert.Len(t, h.eventsOfType(models.EventRegistered), 1)
	assert.Len(t, h.eventsOfType(models.EventLoginSuccess), 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := newHarness(t)
	h.register(t)

	_, err := h.svc.Register(context.Background(), "U@TEST.COM", testPassword, "", testOrigin)
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	failed := h.eventsOfType(models.EventRegisterFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "email_taken", failed[0].Metadata["reason"])
}

func TestRegister_ConcurrentSameEmail(t *testing.T) {
	h := newHarness(t)

	const n = 8
	var (
		wg       sync.WaitGroup
		ok, dups atomic.Int32
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.svc.Register(context.Background(), testEmail, testPassword, testPhone, testOrigin)
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, common.ErrAlreadyExists):
				dups.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(n-1), dups.Load())
}

func TestRegister_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	cases := []struct{ email, password, phone string }{
		{"not-an-email", testPassword, ""},
		{testEmail, "short1!", ""},
		{testEmail, "alllowercase1!", ""},
		{testEmail, testPassword, "5551234"},
	}
	for _, c := range cases {
		_, err := h.svc.Register(ctx, c.email, c.password, c.phone, testOrigin)
		assert.ErrorIs(t, err, common.ErrValidation, c)
	}
	assert.Empty(t, h.store.Events())
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	h := newHarness(t)
	h.register(t)
	ctx := context.Background()

	_, errUnknown := h.svc.Login(ctx, "nobody@test.com", testPassword, testOrigin)
	_, errWrong := h.svc.Login(ctx, testEmail, "Wrong123!", testOrigin)

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
	assert.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)

	failed := h.eventsOfType(models.EventLoginFailed)
	require.Len(t, failed, 2)
	assert.Nil(t, failed[0].AccountID)
	assert.Equal(t, "user_not_found", failed[0].Metadata["reason"])
	require.NotNil(t, failed[1].AccountID)
	assert.Equal(t, "invalid_password", failed[1].Metadata["reason"])
}

func TestLogin_InactiveAccount(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	hash, err := cryptox.NewHasher(4).HashSecret(testPassword)
	require.NoError(t, err)
	_, err = h.store.Accounts(h.store.Conn()).Create(ctx, &models.Account{
		Email: testEmail, PasswordHash: hash, IsActive: false,
	})
	require.NoError(t, err)

	_, err = h.svc.Login(ctx, testEmail, testPassword, testOrigin)
	assert.ErrorIs(t, err, common.ErrAccountInactive)
	failed := h.eventsOfType(models.EventLoginFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "account_inactive", failed[0].Metadata["reason"])
}

func TestStepUpScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.register(t)

	res, err := h.svc.Login(ctx, testEmail, testPassword, testOrigin)
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, res.State)
	require.NotNil(t, res.Tokens)

	h.enableStepUp(t, p.ID)
	prof, err := h.svc.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, prof.StepUpEnabled)

	res, err = h.svc.Login(ctx, testEmail, testPassword, testOrigin)
	require.NoError(t, err)
	assert.Equal(t, StateStepUpPending, res.State)
	assert.True(t, res.StepUpEnabled)
	assert.Nil(t, res.Tokens)
	assert.Equal(t, p.ID, res.AccountID)

	to, code := h.sender.lastSecret(t)
	assert.Equal(t, testPhone, to)
	assert.Len(t, code, OTPDigits)

	pair, err := h.svc.VerifyOneTimeSecret(ctx, p.ID, code, models.PurposeLoginStepUp, testOrigin)
	require.NoError(t, err)
	require.NotNil(t, pair)
	_, err = h.tokens.Verify(auth.KindRefresh, pair.RefreshToken)
	require.NoError(t, err)

	assert.Len(t, h.eventsOfType(models.EventLogin2FARequired), 1)
	assert.Len(t, h.eventsOfType(models.EventLoginSuccessWith2FA), 1)
	assert.Len(t, h.eventsOfType(models.Event2FAEnabled), 1)
}

func TestVerifyOneTimeSecret_ReplayFails(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.register(t)
	h.enableStepUp(t, p.ID)

	_, err := h.svc.Login(ctx, testEmail, testPassword, testOrigin)
	require.NoError(t, err)
	_, code := h.sender.lastSecret(t)

	_, err = h.svc.VerifyOneTimeSecret(ctx, p.ID, code, models.PurposeLoginStepUp, testOrigin)
	require.NoError(t, err)
	_, err = h.svc.VerifyOneTimeSecret(ctx, p.ID, code, models.PurposeLoginStepUp, testOrigin)
	assert.ErrorIs(t, err, common.ErrNotFoundSecret)
}

func TestVerifyOneTimeSecret_AttemptCeiling(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.register(t)
	h.enableStepUp(t, p.ID)

	_, err := h.svc.Login(ctx, testEmail, testPassword, testOrigin)
	require.NoError(t, err)
	_, code := h.sender.lastSecret(t)
	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	for i := 0; i < 3; i++ {
		_, err := h.svc.VerifyOneTimeSecret(ctx, p.ID, wrong, models.PurposeLoginStepUp, testOrigin)
		assert.ErrorIs(t, err, common.ErrInvalidSecret, "attempt %d", i+1)
	}

	_, err = h.svc.VerifyOneTimeSecret(ctx, p.ID, code, models.PurposeLoginStepUp, testOrigin)
	assert.ErrorIs(t, err, common.ErrAttemptsExceeded)

	var loginSecret models.OneTimeSecret
	for _, s := range h.store.Secrets(p.ID) {
		if s.Purpose == models.PurposeLoginStepUp {
			loginSecret = s
		}
	}
	assert.Equal(t, 3, loginSecret.Attempts, "attempts past the ceiling are not counted")
	assert.False(t, loginSecret.Used)

	reasons := map[any]int{}
	for _, e := range h.eventsOfType(models.EventOTPVerifyFailed) {
		reasons[e.Metadata["reason"]]++
	}
	assert.Equal(t, map[any]int{"invalid_code": 3, "max_attempts": 1}, reasons)
}

func TestVerifyOneTimeSecret_AttemptCeilingConcurrent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.register(t)
	h.enableStepUp(t, p.ID)

	_, err := h.svc.Login(ctx, testEmail, testPassword, testOrigin)
	require.NoError(t, err)
	_, code := h.sender.lastSecret(t)

	wrong := make([]string, 0, 40)
	for i := 0; len(wrong) < 40; i++ {
		c := fmt.Sprintf("%06d", i)
		if c != code {
			wrong = append(wrong, c)
		}
	}

	var invalid, exceeded, other atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for _, c := range wrong {
		wg.Add(1)
		go func(c string) {
			defer wg.Done()
			<-start
			_, err := h.svc.VerifyOneTimeSecret(ctx, p.ID, c, models.PurposeLoginStepUp, testOrigin)
			switch {
			case errors.Is(err, common.ErrInvalidSecret):
				invalid.Add(1)
			case errors.Is(err, common.ErrAttemptsExceeded):
				exceeded.Add(1)
			default:
				other.Add(1)
			}
		}(c)
	}
	close(start)
	wg.Wait()

	assert.Zero(t, other.Load())
	assert.LessOrEqual(t, invalid.Load(), int32(3), "at most the ceiling is compared")
	assert.Equal(t, int32(40), invalid.Load()+exceeded.Load())

	for _, s := range h.store.Secrets(p.ID) {
		if s.Purpose == models.PurposeLoginStepUp {
			assert.LessOrEqual(t, s.Attempts, 3)
			assert.False(t, s.Used)
		}
	}

	_, err = h.svc.VerifyOneTimeSecret(ctx, p.ID, code, models.PurposeLoginStepUp, testOrigin)
	assert.ErrorIs(t, err, common.ErrAttemptsExceeded, "the real code is locked out once the ceiling is spent")
}

func TestVerifyOneTimeSecret_Expired(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.register(t)

	require.NoError(t, h.svc.EnableStepUp(ctx, p.ID, testOrigin))
	_, code := h.sender.lastSecret(t)
	h.clock.Advance(11 * time.Minute)

	_, err := h.svc.VerifyOneTimeSecret(ctx, p.ID, code, models.PurposeEnableStepUp, testOrigin)
	assert.ErrorIs(t, err, common.ErrNotFoundSecret)
}

func TestVerifyOneTimeSecret_NewestCodeWins(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.register(t)

	require.NoError(t, h.svc.EnableStepUp(ctx, p.ID, testOrigin))
	_, first := h.sender.lastSecret(t)
	h.clock.Advance(time.Second)
	require.NoError(t, h.svc.EnableStepUp(ctx, p.ID, testOrigin))
	_, second := h.sender.lastSecret(t)

	if first != second {
		_, err := h.svc.VerifyOneTimeSecret(ctx, p.ID, first, models.PurposeEnableStepUp, testOrigin)
		assert.ErrorIs(t, err, common.ErrInvalidSecret)
	}
	_, err := h.svc.VerifyOneTimeSecret(ctx, p.ID, second, models.PurposeEnableStepUp, testOrigin)
	assert.NoError(t, err)
}

func TestVerifyOneTimeSecret_PurposeIsolation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.register(t)

	require.NoError(t, h.svc.EnableStepUp(ctx, p.ID, testOrigin))
	_, code := h.sender.lastSecret(t)

	_, err := h.svc.VerifyOneTimeSecret(ctx, p.ID, code, models.PurposeLoginStepUp, testOrigin)
	assert.ErrorIs(t, err, common.ErrNotFoundSecret)

	_, err = h.svc.VerifyOneTimeSecret(ctx, p.ID, code, models.PurposePasswordReset, testOrigin)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestEnableStepUp_Failures(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	noPhone, err := h.svc.Register(ctx, "nophone@test.com", testPassword, "", testOrigin)
	require.NoError(t, err)
	assert.ErrorIs(t, h.svc.EnableStepUp(ctx, noPhone.ID, testOrigin), common.ErrPhoneRequired)

	p := h.register(t)
	h.enableStepUp(t, p.ID)
	assert.ErrorIs(t, h.svc.EnableStepUp(ctx, p.ID, testOrigin), common.ErrAlreadyEnabled)

	assert.ErrorIs(t, h.svc.EnableStepUp(ctx, "missing", testOrigin), common.ErrorNotFound)

	reasons := map[any]bool{}
	for _, e := range h.eventsOfType(models.Event2FAEnableFailed) {
		reasons[e.Metadata["reason"]] = true
	}
	assert.True(t, reasons["phone_required"])
	assert.True(t, reasons["already_enabled"])
}

func TestNotificationFailureIsNotFatal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	p := h.register(t)
	h.sender.fail = true

	require.NoError(t, h.svc.EnableStepUp(ctx, p.ID, testOrigin))
	assert.Len(t, h.store.Secrets(p.ID), 1, "secret is stored even when delivery fails")
	assert.Zero(t, h.sender.count())
}

func TestGetProfile(t *testing.T) {
	h := newHarness(t)
	p := h.register(t)

	got, err := h.svc.GetProfile(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Email, got.Email)
	assert.Equal(t, testPhone, got.Phone)

	_, err = h.svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
