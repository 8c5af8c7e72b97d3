// Package audit provides destinations for the audit trail. The primary sink
// writes to the audit_events table; S3Archive copies each event to object
// storage for retention; Fanout combines them.
package audit

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
)

// Sink accepts audit events. Implementations must be safe for concurrent use.
type Sink interface {
	Write(ctx context.Context, e models.AuditEvent) error
}

// RepositorySink appends events through the auditevents repository.
type RepositorySink struct {
	runner dbx.Runner
	repos  repomanager.RepositoryManager
}

// NewRepositorySink returns a sink writing outside of any transaction.
func NewRepositorySink(runner dbx.Runner, repos repomanager.RepositoryManager) *RepositorySink {
	return &RepositorySink{runner: runner, repos: repos}
}

func (s *RepositorySink) Write(ctx context.Context, e models.AuditEvent) error {
	return s.repos.AuditEvents(s.runner.Conn()).Append(ctx, &e)
}

// Fanout writes every event to all sinks and joins their errors.
type Fanout []Sink

func (f Fanout) Write(ctx context.Context, e models.AuditEvent) error {
	var errs []error
	for _, s := range f {
		if err := s.Write(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
