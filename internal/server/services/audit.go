// Package services contains server-side business logic: the credential and
// session engine plus the passive components it orchestrates (one-time
// secret store, refresh-token ledger, audit recorder).
package services

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/audit"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/obs"
	"github.com/oklog/ulid/v2"
)

// AuditRecorder stamps events with a ULID and the current time and hands them
// to the sink. A failed write is logged and otherwise ignored: the operation
// being audited has already taken effect.
type AuditRecorder struct {
	sink    audit.Sink
	metrics *obs.Metrics
	log     logging.Logger
	now     func() time.Time

	entropyMu sync.Mutex
	entropy   *ulid.MonotonicEntropy
}

// NewAuditRecorder returns a recorder. metrics may be nil.
func NewAuditRecorder(sink audit.Sink, metrics *obs.Metrics, log logging.Logger, now func() time.Time) *AuditRecorder {
	if now == nil {
		now = time.Now
	}
	return &AuditRecorder{
		sink:    sink,
		metrics: metrics,
		log:     log.With("module", "audit"),
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (r *AuditRecorder) newID(at time.Time) string {
	r.entropyMu.Lock()
	defer r.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), r.entropy).String()
}

// Record appends one event. accountID may be empty when the identity is
// unknown.
func (r *AuditRecorder) Record(ctx context.Context, accountID, eventType string, success bool, meta map[string]any, origin models.Origin) {
	at := r.now().UTC()
	e := models.AuditEvent{
		ID:        r.newID(at),
		EventType: eventType,
		Success:   success,
		Metadata:  meta,
		IPAddress: origin.IPAddress,
		UserAgent: origin.UserAgent,
		CreatedAt: at,
	}
	if accountID != "" {
		e.AccountID = &accountID
	}

	r.metrics.AuthEvent(eventType, success)
	if err := r.sink.Write(ctx, e); err != nil {
		r.log.Error(ctx, "audit write failed", "event", eventType, "error", err)
	}
}

// Failure records an unsuccessful event with a reason.
func (r *AuditRecorder) Failure(ctx context.Context, accountID, eventType, reason string, origin models.Origin) {
	r.Record(ctx, accountID, eventType, false, map[string]any{"reason": reason}, origin)
}
