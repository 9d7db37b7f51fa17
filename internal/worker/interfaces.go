package worker

import (
	"context"

	"basegraph.app/helpdesk/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// TaskHandler runs one deferred automation. Satisfied by service.TaskHandler.
type TaskHandler interface {
	Handle(ctx context.Context, task queue.Task) error
}

// MessageProcessor processes a queue message end to end, including ack or retry.
type MessageProcessor func(ctx context.Context, msg queue.Message) error
