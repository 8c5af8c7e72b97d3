package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/auditevents"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/onetimesecrets"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/refreshtokens"
)

// RepositoryManager vends repositories bound to a DBTX so the same code path
// works inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	OneTimeSecrets(db dbx.DBTX) onetimesecrets.Repository
	AuditEvents(db dbx.DBTX) auditevents.Repository
}
