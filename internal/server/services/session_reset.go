package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// RequestPasswordReset sends a reset token to the account's email. It
// returns nil for unknown addresses so callers cannot probe for accounts.
func (s *SessionService) RequestPasswordReset(ctx context.Context, email string, origin models.Origin) error {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return err
	}

	acc, err := s.repos.Accounts(s.runner.Conn()).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "password reset requested for unknown email")
			s.audit.Record(ctx, "", models.EventPasswordResetRequest, false,
				map[string]any{"email": email, "reason": "user_not_found"}, origin)
			return nil
		}
		return internalError(err)
	}

	token, err := s.secrets.Issue(ctx, acc.ID, models.PurposePasswordReset, s.cfg.ResetTTL)
	if err != nil {
		return internalError(err)
	}
	s.deliver(ctx, acc.ID, acc.Email, "Your password reset token is: "+token)
	s.audit.Record(ctx, acc.ID, models.EventPasswordResetRequest, true, nil, origin)
	return nil
}

// CompletePasswordReset sets a new password for the owner of rawToken. The
// password change, token consumption and revocation of every refresh token
// of the account happen in one transaction. It fails with
// common.ErrInvalidOrExpired when the token is unknown, used or expired.
func (s *SessionService) CompletePasswordReset(ctx context.Context, rawToken, newPassword string, origin models.Origin) error {
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := s.hasher.HashSecret(newPassword)
	if err != nil {
		return internalError(err)
	}

	var (
		accountID string
		revoked   int64
	)
	err = s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		sec, err := s.secrets.ConsumeResetToken(ctx, tx, rawToken)
		if err != nil {
			return err
		}
		if err := s.repos.Accounts(tx).UpdatePassword(ctx, sec.AccountID, hash, s.now()); err != nil {
			return err
		}
		n, err := s.ledger.RevokeAll(ctx, tx, sec.AccountID)
		if err != nil {
			return err
		}
		accountID, revoked = sec.AccountID, n
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidOrExpired) {
			s.audit.Failure(ctx, "", models.EventPasswordResetFailed, "invalid_or_expired_token", origin)
			return common.ErrInvalidOrExpired
		}
		return internalError(err)
	}

	s.audit.Record(ctx, accountID, models.EventPasswordResetComplete, true,
		map[string]any{"revoked_sessions": revoked}, origin)
	s.log.Info(ctx, "password reset completed", "account_id", accountID)
	return nil
}
