// Package accounts declares the account repository contract and its
// PostgreSQL implementation.
package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository persists accounts. Email lookups are case-insensitive and
// uniqueness is enforced by the store, not by a read-then-write check.
type Repository interface {
	// Create inserts a. It returns common.ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, a *models.Account) (*models.Account, error)

	// GetByEmail returns common.ErrorNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByID returns common.ErrorNotFound when no account matches.
	GetByID(ctx context.Context, id string) (*models.Account, error)

	// UpdatePassword replaces the password hash.
	UpdatePassword(ctx context.Context, id string, passwordHash string, at time.Time) error

	// SetStepUpEnabled flips the step-up flag.
	SetStepUpEnabled(ctx context.Context, id string, enabled bool, at time.Time) error
}
