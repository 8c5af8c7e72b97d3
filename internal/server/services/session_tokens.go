package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// RefreshAccessToken exchanges a live refresh token for a new access token.
// The refresh token is not rotated. Every authentication failure collapses
// into common.ErrInvalidOrExpired; storage faults surface as
// common.ErrorInternal.
func (s *SessionService) RefreshAccessToken(ctx context.Context, refreshToken string, origin models.Origin) (string, error) {
	claims, err := s.tokens.Verify(auth.KindRefresh, refreshToken)
	if err != nil {
		reason := "invalid_token"
		if errors.Is(err, common.ErrTokenExpired) {
			reason = "token_expired"
		}
		s.audit.Failure(ctx, "", models.EventTokenRefreshFailed, reason, origin)
		return "", common.ErrInvalidOrExpired
	}

	rec, err := s.ledger.Check(ctx, cryptox.DigestToken(refreshToken))
	if err != nil {
		var reason string
		switch {
		case errors.Is(err, common.ErrorNotFound):
			reason = "not_found"
		case errors.Is(err, common.ErrTokenRevoked):
			reason = "revoked"
		case errors.Is(err, common.ErrRefreshTokenExpired):
			reason = "expired"
		default:
			return "", internalError(err)
		}
		s.audit.Failure(ctx, claims.AccountID(), models.EventTokenRefreshFailed, reason, origin)
		return "", common.ErrInvalidOrExpired
	}
	if rec.AccountID != claims.AccountID() {
		s.audit.Failure(ctx, claims.AccountID(), models.EventTokenRefreshFailed, "subject_mismatch", origin)
		return "", common.ErrInvalidOrExpired
	}

	access, _, err := s.tokens.Mint(auth.KindAccess, claims.AccountID(), claims.Email)
	if err != nil {
		return "", internalError(err)
	}
	s.audit.Record(ctx, claims.AccountID(), models.EventTokenRefreshed, true, nil, origin)
	return access, nil
}

// Logout revokes the refresh token. Unknown, expired or already revoked
// tokens are not an error.
func (s *SessionService) Logout(ctx context.Context, refreshToken string, origin models.Origin) error {
	if err := s.ledger.Revoke(ctx, cryptox.DigestToken(refreshToken)); err != nil {
		return internalError(err)
	}

	var accountID string
	if claims, err := s.tokens.Verify(auth.KindRefresh, refreshToken); err == nil {
		accountID = claims.AccountID()
	}
	s.audit.Record(ctx, accountID, models.EventLogout, true, nil, origin)
	s.log.Info(ctx, "logged out", "account_id", accountID)
	return nil
}
