// Package memory is a process-local backend that implements both
// dbx.Runner and repomanager.RepositoryManager. It backs the dev
// "storage=memory" mode and the service-level tests.
//
// Transactions are emulated: WithTx holds an exclusive lock for the duration
// of fn, snapshots the state first and restores it if fn fails. Repositories
// obtained outside a transaction wait for any running one to finish.
package memory

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/auditevents"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/onetimesecrets"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/refreshtokens"
)

// ErrRawSQL is returned by the DBTX methods of memory handles.
var ErrRawSQL = errors.New("memory backend does not execute SQL")

type state struct {
	accounts map[string]models.Account
	emails   map[string]string
	tokens   map[string]models.RefreshToken
	secrets  map[string]models.OneTimeSecret
	seq      map[string]uint64
	audit    []models.AuditEvent
	next     uint64
}

func newState() state {
	return state{
		accounts: map[string]models.Account{},
		emails:   map[string]string{},
		tokens:   map[string]models.RefreshToken{},
		secrets:  map[string]models.OneTimeSecret{},
		seq:      map[string]uint64{},
	}
}

func (s state) clone() state {
	return state{
		accounts: maps.Clone(s.accounts),
		emails:   maps.Clone(s.emails),
		tokens:   maps.Clone(s.tokens),
		secrets:  maps.Clone(s.secrets),
		seq:      maps.Clone(s.seq),
		audit:    slices.Clone(s.audit),
		next:     s.next,
	}
}

// Store holds all tables.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// handle is the DBTX handed to repositories. It only tells them whether they
// run inside a transaction.
type handle struct {
	inTx bool
}

func (h *handle) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, ErrRawSQL
}

func (h *handle) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, ErrRawSQL
}

// QueryRowContext cannot report an error through *sql.Row, so it panics.
func (h *handle) QueryRowContext(context.Context, string, ...any) *sql.Row {
	panic(ErrRawSQL)
}

var (
	connHandle = &handle{}
	txHandle   = &handle{inTx: true}
)

// Conn implements dbx.Runner.
func (s *Store) Conn() dbx.DBTX {
	return connHandle
}

// WithTx implements dbx.Runner.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) (err error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snap := s.st.clone()
	s.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snap)
			panic(p)
		}
		if err != nil {
			s.restore(snap)
		}
	}()

	return fn(ctx, txHandle)
}

func (s *Store) restore(snap state) {
	s.mu.Lock()
	s.st = snap
	s.mu.Unlock()
}

// lock acquires the data lock. Calls made outside a transaction also wait
// for the running transaction, if any.
func (s *Store) lock(db dbx.DBTX) func() {
	if h, ok := db.(*handle); !ok || !h.inTx {
		s.txMu.Lock()
		s.mu.Lock()
		return func() {
			s.mu.Unlock()
			s.txMu.Unlock()
		}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// RunMigrations is a no-op.
func (s *Store) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

// Accounts implements repomanager.RepositoryManager.
func (s *Store) Accounts(db dbx.DBTX) accounts.Repository {
	return &accountRepo{s: s, db: db}
}

// RefreshTokens implements repomanager.RepositoryManager.
func (s *Store) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return &refreshTokenRepo{s: s, db: db}
}

// OneTimeSecrets implements repomanager.RepositoryManager.
func (s *Store) OneTimeSecrets(db dbx.DBTX) onetimesecrets.Repository {
	return &secretRepo{s: s, db: db}
}

// AuditEvents implements repomanager.RepositoryManager.
func (s *Store) AuditEvents(db dbx.DBTX) auditevents.Repository {
	return &auditRepo{s: s, db: db}
}

// Events returns a copy of the audit trail in append order.
func (s *Store) Events() []models.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.audit)
}

// RefreshToken returns the ledger row for tokenHash.
func (s *Store) RefreshToken(tokenHash string) (models.RefreshToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.st.tokens[tokenHash]
	return t, ok
}

// Secrets returns every stored one-time secret of the account.
func (s *Store) Secrets(accountID string) []models.OneTimeSecret {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.OneTimeSecret
	for _, v := range s.st.secrets {
		if v.AccountID == accountID {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b models.OneTimeSecret) int {
		return cmp.Compare(s.st.seq[a.ID], s.st.seq[b.ID])
	})
	return out
}
