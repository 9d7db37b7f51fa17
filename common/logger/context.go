package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and workers enrich the context once and every slog call below them picks
// the fields up through TraceHandler.
type LogFields struct {
	ConversationID  *int64  // Conversation being worked on
	MessageID       *int64  // Help desk message ID
	UserID          *int64  // Authenticated caller
	StreamMessageID *string // Redis stream message ID (queued tasks only)
	TaskType        *string // auto_assign, auto_respond, generate_summary
	Component       string  // Component name, e.g. "helpdesk.service.assignment"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.ConversationID != nil {
		result.ConversationID = next.ConversationID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.StreamMessageID != nil {
		result.StreamMessageID = next.StreamMessageID
	}
	if next.TaskType != nil {
		result.TaskType = next.TaskType
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{ConversationID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
