package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"basegraph.app/helpdesk/common/logger"
	"github.com/redis/go-redis/v9"
)

type ConsumerConfig struct {
	Stream       string        // Redis stream name
	Group        string        // Redis consumer group name
	Consumer     string        // Redis consumer name
	DLQStream    string        // Dead letter queue stream for failed messages
	BatchSize    int64         // Number of messages to process per batch
	Block        time.Duration // How long to block/poll for new messages
	MaxAttempts  int           // Maximum retry attempts before moving to DLQ
	RequeueDelay time.Duration // Delay before retrying failed messages
}

// Message is a task read from the stream together with its stream entry id.
type Message struct {
	ID string
	Task
	Raw redis.XMessage
}

type RedisConsumer struct {
	client *redis.Client
	cfg    ConsumerConfig
}

func NewRedisConsumer(client *redis.Client, cfg ConsumerConfig) (*RedisConsumer, error) {
	consumer := &RedisConsumer{
		client: client,
		cfg:    cfg,
	}

	if err := consumer.ensureGroup(context.Background()); err != nil { //nolint:contextcheck
		return nil, err
	}

	return consumer, nil
}

func (c *RedisConsumer) Config() ConsumerConfig {
	return c.cfg
}

func (c *RedisConsumer) ensureGroup(ctx context.Context) error {
	// Start from "0" so a recreated group still sees entries already in the stream.
	if err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err(); err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("creating consumer group: %w", err)
	}
	return nil
}

func (c *RedisConsumer) Read(ctx context.Context) ([]Message, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "helpdesk.queue.consumer",
	})

	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		// ">" reads entries never delivered to this group. Stuck pending
		// entries are the reclaimer's job.
		Streams: []string{c.cfg.Stream, ">"},
		Count:   c.cfg.BatchSize,
		Block:   c.cfg.Block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Message{}, nil
		}
		return nil, fmt.Errorf("reading from stream: %w", err)
	}

	var messages []Message
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			parsed, parseErr := ParseMessage(msg)
			if parseErr != nil {
				slog.ErrorContext(ctx, "failed to parse message",
					"error", parseErr,
					"raw_message_id", msg.ID,
					"stream", c.cfg.Stream)
				_ = c.Ack(ctx, Message{ID: msg.ID, Raw: msg})
				continue
			}
			messages = append(messages, parsed)
		}
	}

	if len(messages) > 0 {
		slog.DebugContext(ctx, "read messages from stream",
			"count", len(messages),
			"stream", c.cfg.Stream,
			"consumer", c.cfg.Consumer)
	}

	return messages, nil
}

func (c *RedisConsumer) Ack(ctx context.Context, msg Message) error {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
		return fmt.Errorf("xack (stream=%s): %w", c.cfg.Stream, err)
	}

	slog.DebugContext(ctx, "message acknowledged", "stream", c.cfg.Stream)
	return nil
}

func (c *RedisConsumer) Requeue(ctx context.Context, msg Message, errMsg string) error {
	return c.RequeueWithAttempt(ctx, msg, msg.Attempt+1, errMsg)
}

func (c *RedisConsumer) RequeueWithAttempt(ctx context.Context, msg Message, attempt int, errMsg string) error {
	if attempt <= 0 {
		attempt = msg.Attempt
		if attempt <= 0 {
			attempt = 1
		}
	}

	if err := c.Ack(ctx, msg); err != nil {
		return fmt.Errorf("acking failed message for requeue: %w", err)
	}

	values := taskValues(msg.Task, attempt)
	if errMsg != "" {
		values["last_error"] = errMsg
	}

	if c.cfg.RequeueDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.RequeueDelay):
		}
	}

	if err := c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.cfg.Stream,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("xadd requeue: %w", err)
	}

	slog.InfoContext(ctx, "message requeued for retry",
		"next_attempt", attempt,
		"reason", errMsg)
	return nil
}

func (c *RedisConsumer) SendDLQ(ctx context.Context, msg Message, errMsg string) error {
	if err := c.Ack(ctx, msg); err != nil {
		return fmt.Errorf("acking failed message for dlq: %w", err)
	}

	values := taskValues(msg.Task, msg.Attempt)
	values["error"] = errMsg

	if err := c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.cfg.DLQStream,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("xadd dlq (stream=%s): %w", c.cfg.DLQStream, err)
	}

	slog.ErrorContext(ctx, "message sent to DLQ",
		"final_error", errMsg,
		"dlq_stream", c.cfg.DLQStream)
	return nil
}

func ParseMessage(msg redis.XMessage) (Message, error) {
	conversationID, err := parseInt64(msg.Values, "conversation_id")
	if err != nil {
		return Message{}, err
	}
	messageID, err := parseOptionalInt64(msg.Values, "message_id")
	if err != nil {
		return Message{}, err
	}
	taskType, err := parseOptionalString(msg.Values, "task_type")
	if err != nil {
		return Message{}, err
	}
	traceID, err := parseOptionalString(msg.Values, "trace_id")
	if err != nil {
		return Message{}, err
	}
	attempt, err := parseOptionalInt(msg.Values, "attempt")
	if err != nil {
		return Message{}, err
	}
	if attempt == 0 {
		attempt = 1
	}

	task := Task{
		Type:           TaskType(taskType),
		ConversationID: conversationID,
		MessageID:      messageID,
		TraceID:        traceID,
		Attempt:        attempt,
	}
	if err := task.Validate(); err != nil {
		return Message{}, err
	}

	return Message{ID: msg.ID, Task: task, Raw: msg}, nil
}

func parseInt64(values map[string]any, key string) (int64, error) {
	raw, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	num, err := strconv.ParseInt(fmt.Sprint(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return num, nil
}

func parseOptionalInt64(values map[string]any, key string) (*int64, error) {
	raw, ok := values[key]
	if !ok {
		return nil, nil
	}
	num, err := strconv.ParseInt(fmt.Sprint(raw), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", key, err)
	}
	return &num, nil
}

func parseOptionalInt(values map[string]any, key string) (int, error) {
	raw, ok := values[key]
	if !ok {
		return 0, nil
	}
	num, err := strconv.Atoi(fmt.Sprint(raw))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return num, nil
}

func parseOptionalString(values map[string]any, key string) (string, error) {
	raw, ok := values[key]
	if !ok {
		return "", nil
	}
	return fmt.Sprint(raw), nil
}

func taskValues(task Task, attempt int) map[string]any {
	values := map[string]any{
		"task_type":       string(task.Type),
		"conversation_id": task.ConversationID,
		"attempt":         attempt,
	}
	if task.MessageID != nil {
		values["message_id"] = *task.MessageID
	}
	if task.TraceID != "" {
		values["trace_id"] = task.TraceID
	}
	return values
}
