// Package session keeps the CLI's login state in a local SQLite file so a
// session survives restarts.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/migrations"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Session is what the CLI remembers between runs. PendingAccountID is set
// while a login waits for its step-up code.
type Session struct {
	Email            string
	AccountID        string
	AccessToken      string
	RefreshToken     string
	PendingAccountID string
}

const (
	keyEmail     = "email"
	keyAccountID = "account_id"
	keyAccess    = "access_token"
	keyRefresh   = "refresh_token"
	keyPending   = "pending_account_id"
)

// Store reads and writes the session table.
type Store struct {
	db     *sql.DB
	runner *dbx.SQLRunner
}

// RunMigrations applies the embedded schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database file at dsn along with
// its parent directory.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if _, err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, runner: dbx.NewSQLRunner(db, nil)}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the stored session; a fresh install yields a zero Session.
func (s *Store) Load(ctx context.Context) (Session, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM session`)
	if err != nil {
		return Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Session{}, fmt.Errorf("failed to scan session row: %w", err)
		}
		values[k] = v
	}
	if err := rows.Err(); err != nil {
		return Session{}, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	return Session{
		Email:            values[keyEmail],
		AccountID:        values[keyAccountID],
		AccessToken:      values[keyAccess],
		RefreshToken:     values[keyRefresh],
		PendingAccountID: values[keyPending],
	}, nil
}

// Save replaces the stored session atomically. Empty fields are removed.
func (s *Store) Save(ctx context.Context, sess Session) error {
	values := map[string]string{
		keyEmail:     sess.Email,
		keyAccountID: sess.AccountID,
		keyAccess:    sess.AccessToken,
		keyRefresh:   sess.RefreshToken,
		keyPending:   sess.PendingAccountID,
	}

	return s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		for k, v := range values {
			if v == "" {
				if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, k); err != nil {
					return fmt.Errorf("failed to delete session[%s]: %w", k, err)
				}
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO session (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, k, v)
			if err != nil {
				return fmt.Errorf("failed to set session[%s]: %w", k, err)
			}
		}
		return nil
	})
}

// Clear forgets everything.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// ErrNoSession is returned by callers that need a logged-in session.
var ErrNoSession = errors.New("not logged in")
