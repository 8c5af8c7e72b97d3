package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/audit"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/memory"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type sentMessage struct {
	to, body string
}

type captureSender struct {
	mu   sync.Mutex
	msgs []sentMessage
	fail bool
}

func (c *captureSender) Send(_ context.Context, to, body string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return false, errors.New("gateway down")
	}
	c.msgs = append(c.msgs, sentMessage{to: to, body: body})
	return true, nil
}

func (c *captureSender) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.msgs)
}

// lastSecret returns the code or token at the end of the newest message.
func (c *captureSender) lastSecret(t *testing.T) (string, string) {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.msgs, "no message sent")
	m := c.msgs[len(c.msgs)-1]
	return m.to, m.body[strings.LastIndex(m.body, " ")+1:]
}

type harness struct {
	svc    *SessionService
	store  *memory.Store
	sender *captureSender
	clock  *testClock
	tokens *auth.Manager
}

const (
	testEmail    = "u@test.com"
	testPassword = "Secret123!"
	testPhone    = "+15551234567"
)

var testOrigin = models.Origin{IPAddress: "203.0.113.7", UserAgent: "go-test"}

func newHarness(t *testing.T, mutate ...func(*Dependencies)) *harness {
	t.Helper()

	clock := newTestClock()
	store := memory.NewStore()
	sender := &captureSender{}
	tokens, err := auth.NewManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	tokens.WithClock(clock.Now)

	deps := Dependencies{
		Runner:   store,
		Repos:    store,
		Tokens:   tokens,
		Notifier: sender,
		Audit:    audit.NewRepositorySink(store, store),
		Logger:   logging.NewDiscardLogger(),
		Clock:    clock.Now,
	}
	for _, m := range mutate {
		m(&deps)
	}

	svc, err := NewSessionService(Config{
		BcryptCost:     bcrypt.MinCost,
		OTPTTL:         10 * time.Minute,
		OTPMaxAttempts: 3,
		ResetTTL:       time.Hour,
	}, deps)
	require.NoError(t, err)

	return &harness{svc: svc, store: store, sender: sender, clock: clock, tokens: tokens}
}

func (h *harness) register(t *testing.T) *models.Profile {
	t.Helper()
	p, err := h.svc.Register(context.Background(), testEmail, testPassword, testPhone, testOrigin)
	require.NoError(t, err)
	return p
}

// enableStepUp runs the full enable flow for accountID.
func (h *harness) enableStepUp(t *testing.T, accountID string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.svc.EnableStepUp(ctx, accountID, testOrigin))
	_, code := h.sender.lastSecret(t)
	pair, err := h.svc.VerifyOneTimeSecret(ctx, accountID, code, models.PurposeEnableStepUp, testOrigin)
	require.NoError(t, err)
	require.Nil(t, pair)
}

func (h *harness) eventsOfType(eventType string) []models.AuditEvent {
	var out []models.AuditEvent
	for _, e := range h.store.Events() {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// newTestSink writes to the memory store's audit table.
func newTestSink(store *memory.Store) audit.Sink {
	return audit.NewRepositorySink(store, store)
}
