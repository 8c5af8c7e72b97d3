package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

const (
	// OTPDigits is the length of step-up codes.
	OTPDigits = 6
	// ResetTokenBytes is the entropy of password-reset tokens.
	ResetTokenBytes = 32
)

// OneTimeSecretStore issues and consumes OTP codes and reset tokens. It never
// delivers them; the raw value is returned to the caller once.
type OneTimeSecretStore struct {
	runner      dbx.Runner
	repos       repomanager.RepositoryManager
	hasher      *cryptox.Hasher
	maxAttempts int
	now         func() time.Time
}

// NewOneTimeSecretStore returns a store capping OTP verification at
// maxAttempts failed tries.
func NewOneTimeSecretStore(runner dbx.Runner, repos repomanager.RepositoryManager, hasher *cryptox.Hasher, maxAttempts int, now func() time.Time) *OneTimeSecretStore {
	if now == nil {
		now = time.Now
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &OneTimeSecretStore{runner: runner, repos: repos, hasher: hasher, maxAttempts: maxAttempts, now: now}
}

// Issue generates, hashes and stores a new secret for (accountID, purpose)
// and returns the raw value. Older unused secrets for the same pair expire in
// the same transaction. OTP purposes get a numeric code under the slow
// hasher; password-reset gets an opaque token under a fast digest.
func (s *OneTimeSecretStore) Issue(ctx context.Context, accountID string, purpose models.Purpose, ttl time.Duration) (string, error) {
	var raw, digest string
	switch purpose {
	case models.PurposeLoginStepUp, models.PurposeEnableStepUp:
		code, err := cryptox.GenerateOTP(OTPDigits)
		if err != nil {
			return "", err
		}
		h, err := s.hasher.HashSecret(code)
		if err != nil {
			return "", err
		}
		raw, digest = code, h
	case models.PurposePasswordReset:
		tok, err := cryptox.GenerateOpaqueToken(ResetTokenBytes)
		if err != nil {
			return "", err
		}
		raw, digest = tok, cryptox.DigestToken(tok)
	default:
		return "", fmt.Errorf("unknown purpose %q", purpose)
	}

	now := s.now()
	err := s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.OneTimeSecrets(tx)
		if _, err := repo.ExpireActive(ctx, accountID, purpose, now); err != nil {
			return err
		}
		return repo.Create(ctx, &models.OneTimeSecret{
			AccountID:  accountID,
			SecretHash: digest,
			Purpose:    purpose,
			ExpiresAt:  now.Add(ttl),
			CreatedAt:  now,
		})
	})
	if err != nil {
		return "", err
	}
	return raw, nil
}

// Verify checks presented against the newest active secret for
// (accountID, purpose). It fails with common.ErrNotFoundSecret,
// common.ErrAttemptsExceeded or common.ErrInvalidSecret; other errors are
// storage faults. A successful match consumes the secret.
//
// Each comparison first reserves one attempt with a conditional increment, so
// concurrent callers can never compare more than maxAttempts codes against
// one secret.
func (s *OneTimeSecretStore) Verify(ctx context.Context, accountID string, purpose models.Purpose, presented string) error {
	repo := s.repos.OneTimeSecrets(s.runner.Conn())

	sec, err := repo.FindLatestActive(ctx, accountID, purpose, s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrNotFoundSecret
		}
		return err
	}
	if sec.Attempts >= s.maxAttempts {
		return common.ErrAttemptsExceeded
	}

	if _, err := repo.ReserveAttempt(ctx, sec.ID, s.maxAttempts); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrAttemptsExceeded
		}
		return err
	}

	if !s.hasher.VerifySecret(presented, sec.SecretHash) {
		return common.ErrInvalidSecret
	}

	ok, err := repo.MarkUsed(ctx, sec.ID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrNotFoundSecret
	}
	return nil
}

// ConsumeResetToken finds the active password-reset row for raw and marks it
// used within db. No attempt counter applies. It fails with
// common.ErrInvalidOrExpired when no such row exists.
func (s *OneTimeSecretStore) ConsumeResetToken(ctx context.Context, db dbx.DBTX, raw string) (*models.OneTimeSecret, error) {
	repo := s.repos.OneTimeSecrets(db)

	sec, err := repo.FindActiveByHash(ctx, cryptox.DigestToken(raw), models.PurposePasswordReset, s.now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidOrExpired
		}
		return nil, err
	}

	ok, err := repo.MarkUsed(ctx, sec.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.ErrInvalidOrExpired
	}
	sec.Used = true
	return sec, nil
}
