package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultStreamMaxLen bounds the outbox stream.
const DefaultStreamMaxLen = 10000

// RedisStreamSender appends each message to a Redis stream that an SMS or
// email gateway consumes. Entries carry "to" and "body" fields.
type RedisStreamSender struct {
	rdb    redis.UniversalClient
	stream string
	maxLen int64
}

// NewRedisStreamSender returns a sender appending to stream. maxLen <= 0
// uses DefaultStreamMaxLen.
func NewRedisStreamSender(rdb redis.UniversalClient, stream string, maxLen int64) (*RedisStreamSender, error) {
	if rdb == nil {
		return nil, errors.New("redis client is nil")
	}
	if stream == "" {
		return nil, errors.New("stream name is empty")
	}
	if maxLen <= 0 {
		maxLen = DefaultStreamMaxLen
	}
	return &RedisStreamSender{rdb: rdb, stream: stream, maxLen: maxLen}, nil
}

func (s *RedisStreamSender) Send(ctx context.Context, destination, message string) (bool, error) {
	err := s.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]any{"to": destination, "body": message},
	}).Err()
	if err != nil {
		return false, fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return true, nil
}
