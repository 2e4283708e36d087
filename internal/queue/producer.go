package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// SubmissionMessage is the hand-off record for an accepted submission.
// Persistence and notification are downstream concerns: an external consumer
// subscribes to the stream and takes it from there.
type SubmissionMessage struct {
	Reference  string
	Mission    string
	ClientID   string
	Fields     map[string]any
	ReceivedAt time.Time
}

type Producer interface {
	Publish(ctx context.Context, msg SubmissionMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, msg SubmissionMessage) error {
	payload, err := json.Marshal(msg.Fields)
	if err != nil {
		return fmt.Errorf("marshal submission fields: %w", err)
	}

	fields := map[string]any{
		"reference":   msg.Reference,
		"mission":     msg.Mission,
		"client_id":   msg.ClientID,
		"payload":     string(payload),
		"received_at": msg.ReceivedAt.UTC().Format(time.RFC3339),
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("publish submission %s: %w", msg.Reference, err)
	}

	p.logger.DebugContext(ctx, "submission published",
		"stream", p.stream,
		"reference", msg.Reference,
		"mission", msg.Mission)

	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
