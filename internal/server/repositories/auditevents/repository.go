// Package auditevents declares the append-only audit trail store.
package auditevents

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository appends audit events. Events are never updated or deleted.
type Repository interface {
	Append(ctx context.Context, e *models.AuditEvent) error
}
