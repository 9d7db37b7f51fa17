package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"basegraph.app/helpdesk/common"
	"basegraph.app/helpdesk/common/id"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/queue"
	"basegraph.app/helpdesk/internal/store"
)

type MessageService interface {
	// Create posts into a conversation the sender can see.
	Create(ctx context.Context, sender *model.User, conversationID int64, content string) (*model.Message, error)
	// Post runs the full posting pipeline. conv is refreshed from storage before the sender role is derived.
	Post(ctx context.Context, conv *model.Conversation, sender *model.User, content string) (*model.Message, error)
	List(ctx context.Context, caller *model.User, conversationID int64) ([]model.Message, error)
	MarkRead(ctx context.Context, caller *model.User, messageID int64) error
	UnreadCount(ctx context.Context, conv *model.Conversation, viewer *model.User) (int64, error)
}

type messageService struct {
	stores StoreProvider
	tx     TxRunner
	runner TaskRunner
}

func NewMessageService(stores StoreProvider, tx TxRunner, runner TaskRunner) MessageService {
	return &messageService{
		stores: stores,
		tx:     tx,
		runner: runner,
	}
}

func (s *messageService) Create(ctx context.Context, sender *model.User, conversationID int64, content string) (*model.Message, error) {
	conv, err := loadVisibleConversation(ctx, s.stores, sender, conversationID)
	if err != nil {
		return nil, err
	}
	return s.Post(ctx, conv, sender, content)
}

func (s *messageService) Post(ctx context.Context, conv *model.Conversation, sender *model.User, content string) (*model.Message, error) {
	if common.IsBlank(content) {
		return nil, newValidationError("Content can't be blank")
	}
	msg := &model.Message{
		ID:             id.New(),
		ConversationID: conv.ID,
		SenderID:       sender.ID,
		SenderUsername: sender.Username,
		Content:        content,
	}

	// Role and promotion follow the row as read inside the transaction, not conv.
	var promote bool
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		current, err := stores.Conversations().GetByID(ctx, conv.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrConversationNotFound
			}
			return fmt.Errorf("reloading conversation: %w", err)
		}
		role, ok := current.RoleFor(sender.ID)
		if !ok {
			return newValidationError("Sender role could not be determined")
		}
		msg.SenderRole = role

		promote = current.Status == model.ConversationStatusWaiting && current.IsAssigned()
		if promote {
			if err := stores.Conversations().PromoteToActive(ctx, conv.ID); err != nil {
				return fmt.Errorf("activating conversation: %w", err)
			}
		}
		if err := stores.Messages().Create(ctx, msg); err != nil {
			return fmt.Errorf("creating message: %w", err)
		}
		if err := stores.Conversations().TouchLastMessage(ctx, conv.ID, msg.CreatedAt); err != nil {
			return fmt.Errorf("touching conversation: %w", err)
		}
		*conv = *current
		return nil
	})
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) && !errors.Is(err, ErrNotFound) {
			slog.ErrorContext(ctx, "failed to post message",
				"error", err,
				"conversation_id", conv.ID,
				"sender_id", sender.ID)
		}
		return nil, err
	}
	if promote {
		conv.Status = model.ConversationStatusActive
	}
	conv.LastMessageAt = &msg.CreatedAt

	slog.InfoContext(ctx, "message posted",
		"conversation_id", conv.ID,
		"message_id", msg.ID,
		"sender_role", msg.SenderRole)

	if msg.SenderRole == model.SenderRoleInitiator && conv.IsAssigned() {
		s.schedule(ctx, queue.Task{
			Type:           queue.TaskTypeAutoRespond,
			ConversationID: conv.ID,
			MessageID:      &msg.ID,
		})
	}

	if !conv.HasSummary() {
		count, err := s.stores.Messages().CountByConversation(ctx, conv.ID)
		if err != nil {
			slog.WarnContext(ctx, "failed to count messages", "error", err, "conversation_id", conv.ID)
		} else if count >= SummaryThreshold {
			s.schedule(ctx, queue.Task{
				Type:           queue.TaskTypeGenerateSummary,
				ConversationID: conv.ID,
			})
		}
	}

	return msg, nil
}

// schedule never fails the post. The message is already durable.
func (s *messageService) schedule(ctx context.Context, task queue.Task) {
	if err := s.runner.Run(ctx, task); err != nil {
		slog.WarnContext(ctx, "failed to run follow-up task",
			"error", err,
			"task_type", task.Type,
			"conversation_id", task.ConversationID)
	}
}

func (s *messageService) List(ctx context.Context, caller *model.User, conversationID int64) ([]model.Message, error) {
	conv, err := loadVisibleConversation(ctx, s.stores, caller, conversationID)
	if err != nil {
		return nil, err
	}
	messages, err := s.stores.Messages().ListByConversation(ctx, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return messages, nil
}

func (s *messageService) MarkRead(ctx context.Context, caller *model.User, messageID int64) error {
	msg, err := s.stores.Messages().GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("loading message: %w", err)
	}
	if _, err := loadVisibleConversation(ctx, s.stores, caller, msg.ConversationID); err != nil {
		return err
	}
	if msg.SenderID == caller.ID {
		return ErrOwnMessage
	}
	if msg.IsRead {
		return nil
	}
	if err := s.stores.Messages().MarkRead(ctx, msg.ID); err != nil {
		return fmt.Errorf("marking message read: %w", err)
	}
	return nil
}

func (s *messageService) UnreadCount(ctx context.Context, conv *model.Conversation, viewer *model.User) (int64, error) {
	return unreadCount(ctx, s.stores, conv, viewer.ID)
}

func unreadCount(ctx context.Context, stores StoreProvider, conv *model.Conversation, viewerID int64) (int64, error) {
	if !conv.IsParticipant(viewerID) {
		return 0, nil
	}
	n, err := stores.Messages().CountUnread(ctx, conv.ID, viewerID)
	if err != nil {
		return 0, fmt.Errorf("counting unread messages: %w", err)
	}
	return n, nil
}

// loadVisibleConversation hides conversations the caller is not part of behind not-found.
func loadVisibleConversation(ctx context.Context, stores StoreProvider, caller *model.User, conversationID int64) (*model.Conversation, error) {
	conv, err := stores.Conversations().GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("loading conversation: %w", err)
	}
	if !conv.IsParticipant(caller.ID) {
		return nil, ErrConversationNotFound
	}
	return conv, nil
}
