package models

import "time"

// RefreshToken is one ledger row per minted refresh token. Only the digest of
// the token is stored.
type RefreshToken struct {
	ID        string
	AccountID string
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}
