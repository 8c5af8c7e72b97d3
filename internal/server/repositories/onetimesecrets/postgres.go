package onetimesecrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.OneTimeSecret) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `
		INSERT INTO one_time_secrets (id, account_id, secret_hash, purpose, expires_at, used, attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, 0, $6)
	`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.AccountID, s.SecretHash, string(s.Purpose), s.ExpiresAt, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	s.Used = false
	s.Attempts = 0
	return nil
}

func (r *PostgresRepository) FindLatestActive(ctx context.Context, accountID string, purpose models.Purpose, now time.Time) (*models.OneTimeSecret, error) {
	query := `
		SELECT id, account_id, secret_hash, purpose, expires_at, used, attempts, created_at
		FROM one_time_secrets
		WHERE account_id = $1 AND purpose = $2 AND NOT used AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1
	`
	return scanSecret(r.db.QueryRowContext(ctx, query, accountID, string(purpose), now))
}

func (r *PostgresRepository) FindActiveByHash(ctx context.Context, secretHash string, purpose models.Purpose, now time.Time) (*models.OneTimeSecret, error) {
	query := `
		SELECT id, account_id, secret_hash, purpose, expires_at, used, attempts, created_at
		FROM one_time_secrets
		WHERE secret_hash = $1 AND purpose = $2 AND NOT used AND expires_at > $3
		LIMIT 1
	`
	return scanSecret(r.db.QueryRowContext(ctx, query, secretHash, string(purpose), now))
}

func (r *PostgresRepository) ExpireActive(ctx context.Context, accountID string, purpose models.Purpose, now time.Time) (int64, error) {
	query := `
		UPDATE one_time_secrets SET expires_at = $3
		WHERE account_id = $1 AND purpose = $2 AND NOT used AND expires_at > $3
	`
	res, err := r.db.ExecContext(ctx, query, accountID, string(purpose), now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) ReserveAttempt(ctx context.Context, id string, ceiling int) (int, error) {
	query := `
		UPDATE one_time_secrets SET attempts = attempts + 1
		WHERE id = $1 AND attempts < $2
		RETURNING attempts
	`
	var attempts int
	if err := r.db.QueryRowContext(ctx, query, id, ceiling).Scan(&attempts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return attempts, nil
}

func (r *PostgresRepository) MarkUsed(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE one_time_secrets SET used = TRUE
		WHERE id = $1 AND NOT used
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func scanSecret(row dbx.Scanner) (*models.OneTimeSecret, error) {
	s := &models.OneTimeSecret{}
	var purpose string
	err := row.Scan(&s.ID, &s.AccountID, &s.SecretHash, &purpose, &s.ExpiresAt, &s.Used, &s.Attempts, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	s.Purpose = models.Purpose(purpose)
	return s, nil
}
