package service

import (
	"context"
	"fmt"
	"log/slog"

	"basegraph.app/helpdesk/common/logger"
	"basegraph.app/helpdesk/internal/queue"
)

// TaskRunner schedules an automation. Immediate runners execute it before
// returning; queued runners hand it to the worker through the stream.
type TaskRunner interface {
	Run(ctx context.Context, task queue.Task) error
}

// TaskHandler executes one automation. The worker and the immediate runner share it.
type TaskHandler interface {
	Handle(ctx context.Context, task queue.Task) error
}

type immediateRunner struct {
	handler TaskHandler
}

func NewImmediateRunner(handler TaskHandler) TaskRunner {
	return &immediateRunner{handler: handler}
}

func (r *immediateRunner) Run(ctx context.Context, task queue.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("running task: %w", err)
	}
	task.Attempt = 1
	return r.handler.Handle(ctx, task)
}

type queuedRunner struct {
	producer queue.Producer
}

func NewQueuedRunner(producer queue.Producer) TaskRunner {
	return &queuedRunner{producer: producer}
}

func (r *queuedRunner) Run(ctx context.Context, task queue.Task) error {
	if task.TraceID == "" {
		task.TraceID = logger.TraceID(ctx)
	}
	if err := r.producer.Enqueue(ctx, task); err != nil {
		return fmt.Errorf("queueing %s: %w", task.Type, err)
	}
	return nil
}

type taskHandler struct {
	assignment AssignmentService
	responder  AutoResponseEngine
	summarizer SummaryEngine
}

func NewTaskHandler(assignment AssignmentService, responder AutoResponseEngine, summarizer SummaryEngine) TaskHandler {
	return &taskHandler{
		assignment: assignment,
		responder:  responder,
		summarizer: summarizer,
	}
}

// Handle returns an error only for store failures worth a redelivery.
// Oracle failures have already been absorbed by the engines.
func (h *taskHandler) Handle(ctx context.Context, task queue.Task) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ConversationID: &task.ConversationID,
		MessageID:      task.MessageID,
		TaskType:       logger.Ptr(string(task.Type)),
	})

	switch task.Type {
	case queue.TaskTypeAutoAssign:
		result := h.assignment.AutoAssign(ctx, task.ConversationID)
		if result.Outcome == OutcomeError {
			slog.WarnContext(ctx, "auto-assign failed", "error", result.Err)
			return nil
		}
		slog.InfoContext(ctx, "auto-assign finished", "outcome", result.Outcome)
		return nil

	case queue.TaskTypeAutoRespond:
		if task.MessageID == nil {
			return fmt.Errorf("auto_respond without message id")
		}
		return h.responder.RespondTo(ctx, task.ConversationID, *task.MessageID)

	case queue.TaskTypeGenerateSummary:
		applied, err := h.summarizer.MaybeSummarize(ctx, task.ConversationID)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "summary task finished", "applied", applied)
		return nil

	default:
		return fmt.Errorf("unknown task type %q", task.Type)
	}
}
