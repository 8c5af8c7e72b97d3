package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// Ledger records a digest of every issued refresh token so a stateless token
// can still be revoked before it expires.
type Ledger struct {
	runner dbx.Runner
	repos  repomanager.RepositoryManager
	now    func() time.Time
}

// NewLedger returns a Ledger.
func NewLedger(runner dbx.Runner, repos repomanager.RepositoryManager, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{runner: runner, repos: repos, now: now}
}

// Record inserts a live row for tokenHash using db.
func (l *Ledger) Record(ctx context.Context, db dbx.DBTX, accountID, tokenHash string, expiresAt time.Time, origin models.Origin) error {
	return l.repos.RefreshTokens(db).Create(ctx, &models.RefreshToken{
		AccountID: accountID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		IPAddress: origin.IPAddress,
		UserAgent: origin.UserAgent,
		CreatedAt: l.now(),
	})
}

// Check returns the row for tokenHash if it is live. It fails with
// common.ErrorNotFound, common.ErrTokenRevoked or common.ErrRefreshTokenExpired;
// any other error is a storage fault.
func (l *Ledger) Check(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	t, err := l.repos.RefreshTokens(l.runner.Conn()).FindByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	if t.Revoked {
		return nil, common.ErrTokenRevoked
	}
	if !l.now().Before(t.ExpiresAt) {
		return nil, common.ErrRefreshTokenExpired
	}
	return t, nil
}

// Revoke marks tokenHash revoked. Unknown and already revoked rows are fine.
func (l *Ledger) Revoke(ctx context.Context, tokenHash string) error {
	return l.repos.RefreshTokens(l.runner.Conn()).Revoke(ctx, tokenHash)
}

// RevokeAll revokes every live token of the account using db.
func (l *Ledger) RevokeAll(ctx context.Context, db dbx.DBTX, accountID string) (int64, error) {
	return l.repos.RefreshTokens(db).RevokeAllForAccount(ctx, accountID)
}
