package models

import "time"

// Purpose tags what a one-time secret may be used for.
type Purpose string

const (
	PurposeLoginStepUp   Purpose = "login-step-up"
	PurposeEnableStepUp  Purpose = "enable-step-up"
	PurposePasswordReset Purpose = "password-reset"
)

// ParsePurpose returns the Purpose named by s, or false for anything else.
func ParsePurpose(s string) (Purpose, bool) {
	switch p := Purpose(s); p {
	case PurposeLoginStepUp, PurposeEnableStepUp, PurposePasswordReset:
		return p, true
	default:
		return "", false
	}
}

// IsOTP reports whether the purpose uses a short numeric code (slow-hashed,
// attempt-limited) rather than an opaque token.
func (p Purpose) IsOTP() bool {
	switch p {
	case PurposeLoginStepUp, PurposeEnableStepUp:
		return true
	case PurposePasswordReset:
		return false
	default:
		return false
	}
}

// OneTimeSecret is an issued OTP code or reset token. Used is terminal.
type OneTimeSecret struct {
	ID         string
	AccountID  string
	SecretHash string
	Purpose    Purpose
	ExpiresAt  time.Time
	Used       bool
	Attempts   int
	CreatedAt  time.Time
}

// Active reports whether the secret can still be consulted at now.
func (s *OneTimeSecret) Active(now time.Time) bool {
	return !s.Used && now.Before(s.ExpiresAt)
}
