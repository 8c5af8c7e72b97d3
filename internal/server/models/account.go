// Package models holds the persisted entities of the credential/session
// lifecycle: accounts, issued refresh tokens, one-time secrets and audit events.
package models

import "time"

// Account is a registered identity. PasswordHash never leaves the service
// layer; read paths hand out Profile instead.
type Account struct {
	ID            string
	Email         string
	PasswordHash  string
	Phone         string
	IsActive      bool
	StepUpEnabled bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile is the public view of an Account.
type Profile struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	IsActive      bool      `json:"is_active"`
	StepUpEnabled bool      `json:"is_2fa_enabled"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Profile strips the password hash.
func (a *Account) Profile() *Profile {
	return &Profile{
		ID:            a.ID,
		Email:         a.Email,
		Phone:         a.Phone,
		IsActive:      a.IsActive,
		StepUpEnabled: a.StepUpEnabled,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// Origin describes where a request came from.
type Origin struct {
	IPAddress string
	UserAgent string
}
