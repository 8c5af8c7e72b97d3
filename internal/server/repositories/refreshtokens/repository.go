// Package refreshtokens declares the server-side repository contract for the
// refresh-token ledger: one row per minted refresh token, keyed by its digest.
package refreshtokens

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository defines operations for recording, looking up and revoking
// refresh tokens. Raw tokens never reach this layer.
type Repository interface {
	// Create stores a new non-revoked ledger row.
	Create(ctx context.Context, t *models.RefreshToken) error

	// FindByHash returns the row for tokenHash regardless of its state.
	// Implementations return common.ErrorNotFound when the digest is unknown.
	FindByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// Revoke marks the row revoked. Unknown or already revoked digests are
	// not an error.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllForAccount revokes every live row owned by accountID and
	// returns how many rows changed.
	RevokeAllForAccount(ctx context.Context, accountID string) (int64, error)
}
