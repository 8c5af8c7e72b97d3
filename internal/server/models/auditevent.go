package models

import "time"

// Audit event types.
const (
	EventRegistered            = "user_registered"
	EventRegisterFailed        = "register_failed"
	EventLoginFailed           = "login_failed"
	EventLogin2FARequired      = "login_2fa_required"
	EventLoginSuccess          = "login_success"
	EventLoginSuccessWith2FA   = "login_success_with_2fa"
	Event2FAEnableRequested    = "2fa_enable_requested"
	Event2FAEnableFailed       = "2fa_enable_failed"
	Event2FAEnabled            = "2fa_enabled"
	EventOTPVerifyFailed       = "otp_verify_failed"
	EventTokenRefreshed        = "token_refreshed"
	EventTokenRefreshFailed    = "token_refresh_failed"
	EventLogout                = "logout"
	EventPasswordResetRequest  = "password_reset_requested"
	EventPasswordResetFailed   = "password_reset_failed"
	EventPasswordResetComplete = "password_reset_completed"
)

// AuditEvent is an append-only record of a security-relevant action.
// AccountID is nil when the identity was never resolved.
type AuditEvent struct {
	ID        string         `json:"id"`
	AccountID *string        `json:"account_id,omitempty"`
	EventType string         `json:"event_type"`
	Success   bool           `json:"success"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	IPAddress string         `json:"ip_address,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
