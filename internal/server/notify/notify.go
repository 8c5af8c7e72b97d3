// Package notify delivers one-time codes and reset tokens to account owners.
// Delivery is best effort: callers log a failed send and carry on.
package notify

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Sender delivers message to destination (a phone number or an email
// address). It reports whether the message was accepted.
type Sender interface {
	Send(ctx context.Context, destination, message string) (bool, error)
}

// LogSender writes messages to the log instead of delivering them. Use it in
// development only: the message contains the raw secret.
type LogSender struct {
	log logging.Logger
}

// NewLogSender returns a LogSender writing to log.
func NewLogSender(log logging.Logger) *LogSender {
	return &LogSender{log: log.With("module", "notify")}
}

func (s *LogSender) Send(ctx context.Context, destination, message string) (bool, error) {
	s.log.Info(ctx, "notification", "to", destination, "message", message)
	return true, nil
}
