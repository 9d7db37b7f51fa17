package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"basegraph.app/helpdesk/common/logger"
	"basegraph.app/helpdesk/internal/queue"
)

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer Consumer
	handler  TaskHandler
	cfg      Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer Consumer, handler TaskHandler, cfg Config) *Worker {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Worker{
		consumer:  consumer,
		handler:   handler,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "helpdesk.worker"})
	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				select {
				case <-ctx.Done():
				case <-w.stopCh:
				case <-time.After(time.Second):
				}
			}
		}
	}
}

// Stop signals Run to return and waits for it. Must not be called more than once.
func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		_ = w.HandleMessage(ctx, msg)
	}

	return nil
}

// HandleMessage processes msg and, on failure, requeues it or moves it to
// the DLQ. It is the MessageProcessor handed to the reclaimer.
func (w *Worker) HandleMessage(ctx context.Context, msg queue.Message) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ConversationID:  logger.Ptr(msg.ConversationID),
		MessageID:       msg.MessageID,
		StreamMessageID: logger.Ptr(msg.ID),
		TaskType:        logger.Ptr(string(msg.Type)),
	})

	if err := w.processMessageSafe(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "message processing failed", "error", err)
		w.handleFailedMessage(ctx, msg, err)
		return err
	}
	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing", "panic", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// ProcessMessage runs the task and acks it on success.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	sc := logger.StartSpanFromTraceID(ctx, msg.TraceID, "worker.task."+string(msg.Type))
	defer sc.End()
	ctx = sc.Context()

	slog.InfoContext(ctx, "processing task", "attempt", msg.Attempt)

	start := time.Now()
	if err := w.handler.Handle(ctx, msg.Task); err != nil {
		sc.RecordError(err)
		return fmt.Errorf("handling %s: %w", msg.Type, err)
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// A missed ack only means the reclaimer redelivers; every task is idempotent.
		slog.WarnContext(ctx, "failed to ACK message", "error", err)
	}

	slog.InfoContext(ctx, "task processed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ", "attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message", "attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}
