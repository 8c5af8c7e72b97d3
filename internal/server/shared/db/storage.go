// Package db opens the configured persistence backend and hands back the
// transaction runner and repository manager the services work against.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage is an opened backend. Close releases it.
type Storage struct {
	Runner dbx.Runner
	Repos  repomanager.RepositoryManager
	close  func() error
}

func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

var (
	openDB  = sql.Open
	migrate = func(ctx context.Context, m repomanager.RepositoryManager, db *sql.DB) error {
		return m.RunMigrations(ctx, db)
	}
)

// Open returns the backend named by kind ("postgres" or "memory").
func Open(ctx context.Context, kind, dsn string) (*Storage, error) {
	switch kind {
	case "postgres":
		return OpenPostgres(ctx, dsn)
	case "memory":
		return OpenMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", kind)
	}
}

// OpenPostgres connects through pgx, checks the connection and applies
// pending migrations.
func OpenPostgres(ctx context.Context, dsn string) (*Storage, error) {

	db, err := openDB("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()

	if err := migrate(ctx, m, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{
		Runner: dbx.NewSQLRunner(db, nil),
		Repos:  m,
		close:  db.Close,
	}, nil
}

// OpenMemory returns a fresh in-process backend. Data is lost on exit.
func OpenMemory() *Storage {
	s := memory.NewStore()
	return &Storage{Runner: s, Repos: s}
}
