package queue

import (
	"errors"
	"fmt"
)

type TaskType string

const (
	TaskTypeAutoAssign      TaskType = "auto_assign"
	TaskTypeAutoRespond     TaskType = "auto_respond"
	TaskTypeGenerateSummary TaskType = "generate_summary"
)

// Task is one deferred automation run against a conversation.
type Task struct {
	Type           TaskType
	ConversationID int64
	MessageID      *int64 // set for auto_respond: the initiator message to answer
	TraceID        string
	Attempt        int
}

func (t Task) Validate() error {
	if t.ConversationID <= 0 {
		return errors.New("missing conversation_id")
	}
	switch t.Type {
	case TaskTypeAutoAssign, TaskTypeGenerateSummary:
		return nil
	case TaskTypeAutoRespond:
		if t.MessageID == nil {
			return errors.New("missing message_id")
		}
		return nil
	case "":
		return errors.New("missing task_type")
	default:
		return fmt.Errorf("unknown task_type %q", t.Type)
	}
}
