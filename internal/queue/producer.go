package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Producer interface {
	Enqueue(ctx context.Context, task Task) error
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

func (p *redisProducer) Enqueue(ctx context.Context, task Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	attempt := task.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: taskValues(task, attempt),
	}).Err(); err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued task",
		"task_type", task.Type,
		"conversation_id", task.ConversationID,
		"attempt", attempt)
	return nil
}

// Close is a no-op because the client is shared with the rest of the process.
func (p *redisProducer) Close() error {
	return nil
}
