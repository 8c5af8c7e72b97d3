package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubOpen(t *testing.T, db *sql.DB, migrateErr error) {
	t.Helper()
	origOpen, origMigrate := openDB, migrate
	t.Cleanup(func() { openDB, migrate = origOpen, origMigrate })

	openDB = func(driver, dsn string) (*sql.DB, error) {
		assert.Equal(t, "pgx", driver)
		return db, nil
	}
	migrate = func(context.Context, repomanager.RepositoryManager, *sql.DB) error { return migrateErr }
}

func TestOpenPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	stubOpen(t, db, nil)

	s, err := Open(context.Background(), "postgres", "postgres://x")
	require.NoError(t, err)
	assert.IsType(t, &dbx.SQLRunner{}, s.Runner)
	assert.IsType(t, &repomanager.PostgresRepositoryManager{}, s.Repos)

	mock.ExpectClose()
	require.NoError(t, s.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_MigrationFailureClosesDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	stubOpen(t, db, errors.New("boom"))
	mock.ExpectClose()

	_, err = OpenPostgres(context.Background(), "postgres://x")
	require.ErrorContains(t, err, "migration error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenPostgres_PingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	stubOpen(t, db, nil)
	mock.ExpectPing().WillReturnError(errors.New("refused"))
	mock.ExpectClose()

	_, err = OpenPostgres(context.Background(), "postgres://x")
	require.ErrorContains(t, err, "db ping error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), "memory", "")
	require.NoError(t, err)
	assert.NotNil(t, s.Runner)
	assert.NotNil(t, s.Repos)
	assert.NoError(t, s.Close())
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "")
	assert.Error(t, err)
}
