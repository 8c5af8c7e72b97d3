// Package onetimesecrets declares the repository contract for issued OTP codes
// and password-reset tokens. Only digests are persisted.
package onetimesecrets

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository defines operations for issuing and consuming one-time secrets.
type Repository interface {
	// Create stores a fresh unused secret with zero attempts.
	Create(ctx context.Context, s *models.OneTimeSecret) error

	// FindLatestActive returns the most recently created unused, unexpired
	// secret for the account and purpose, or common.ErrorNotFound.
	FindLatestActive(ctx context.Context, accountID string, purpose models.Purpose, now time.Time) (*models.OneTimeSecret, error)

	// FindActiveByHash returns the unused, unexpired secret with the given
	// digest and purpose, or common.ErrorNotFound.
	FindActiveByHash(ctx context.Context, secretHash string, purpose models.Purpose, now time.Time) (*models.OneTimeSecret, error)

	// ExpireActive ends every unused, unexpired secret for the account and
	// purpose at now and returns how many rows it touched.
	ExpireActive(ctx context.Context, accountID string, purpose models.Purpose, now time.Time) (int64, error)

	// ReserveAttempt bumps the attempt counter in one statement if it is still
	// below ceiling and returns the new value. It returns common.ErrorNotFound
	// when the counter has reached ceiling or the secret does not exist.
	ReserveAttempt(ctx context.Context, id string, ceiling int) (int, error)

	// MarkUsed flips used to true. It reports false when the secret was
	// already used, so only one concurrent consumer wins.
	MarkUsed(ctx context.Context, id string) (bool, error)
}
