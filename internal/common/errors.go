// Package common defines shared constants and sentinel errors used across
// client and server layers of gophauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Input policy violations (email, phone, password shape).
	ErrValidation = errors.New("validation failed")

	// Account lifecycle errors.
	ErrAlreadyExists      = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrPhoneRequired      = errors.New("phone number is required for 2FA")
	ErrAlreadyEnabled     = errors.New("2FA is already enabled")

	// One-time secret errors.
	ErrNotFoundSecret   = errors.New("invalid or expired OTP")
	ErrAttemptsExceeded = errors.New("maximum OTP attempts exceeded")
	ErrInvalidSecret    = errors.New("invalid OTP code")

	// Token and reset errors surfaced to callers.
	ErrInvalidOrExpired = errors.New("invalid or expired token")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenRevoked        = errors.New("token revoked")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
