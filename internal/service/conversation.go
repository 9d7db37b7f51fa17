package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"basegraph.app/helpdesk/common"
	"basegraph.app/helpdesk/common/id"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/queue"
	"basegraph.app/helpdesk/internal/store"
)

// ConversationView is a conversation as seen by one viewer.
type ConversationView struct {
	model.Conversation
	UnreadCount int64
}

type ConversationService interface {
	Create(ctx context.Context, initiator *model.User, title string) (*ConversationView, error)
	List(ctx context.Context, caller *model.User) ([]ConversationView, error)
	Get(ctx context.Context, caller *model.User, conversationID int64) (*ConversationView, error)
	// RequestAssignment re-runs auto-assignment. Only the initiator may ask.
	RequestAssignment(ctx context.Context, caller *model.User, conversationID int64) error
}

type conversationService struct {
	stores StoreProvider
	runner TaskRunner
}

func NewConversationService(stores StoreProvider, runner TaskRunner) ConversationService {
	return &conversationService{
		stores: stores,
		runner: runner,
	}
}

func (s *conversationService) Create(ctx context.Context, initiator *model.User, title string) (*ConversationView, error) {
	title = strings.TrimSpace(title)
	if common.IsBlank(title) {
		return nil, newValidationError("Title can't be blank")
	}

	conv := &model.Conversation{
		ID:          id.New(),
		Title:       title,
		Status:      model.ConversationStatusWaiting,
		InitiatorID: initiator.ID,
	}
	if err := s.stores.Conversations().Create(ctx, conv); err != nil {
		slog.ErrorContext(ctx, "failed to create conversation",
			"error", err,
			"initiator_id", initiator.ID)
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	slog.InfoContext(ctx, "conversation created", "conversation_id", conv.ID)

	if err := s.runner.Run(ctx, queue.Task{Type: queue.TaskTypeAutoAssign, ConversationID: conv.ID}); err != nil {
		slog.WarnContext(ctx, "failed to run auto-assign", "error", err, "conversation_id", conv.ID)
	}

	fresh, err := s.stores.Conversations().GetByID(ctx, conv.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading conversation: %w", err)
	}
	return &ConversationView{Conversation: *fresh}, nil
}

func (s *conversationService) List(ctx context.Context, caller *model.User) ([]ConversationView, error) {
	convs, err := s.stores.Conversations().ListForUser(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}

	views := make([]ConversationView, 0, len(convs))
	for i := range convs {
		conv := s.ensureSummary(ctx, &convs[i])
		view, err := viewFor(ctx, s.stores, conv, caller.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *conversationService) Get(ctx context.Context, caller *model.User, conversationID int64) (*ConversationView, error) {
	conv, err := loadVisibleConversation(ctx, s.stores, caller, conversationID)
	if err != nil {
		return nil, err
	}
	conv = s.ensureSummary(ctx, conv)

	view, err := viewFor(ctx, s.stores, conv, caller.ID)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *conversationService) RequestAssignment(ctx context.Context, caller *model.User, conversationID int64) error {
	conv, err := loadVisibleConversation(ctx, s.stores, caller, conversationID)
	if err != nil {
		return err
	}
	if !conv.IsInitiator(caller.ID) {
		return ErrNotInitiator
	}
	if err := s.runner.Run(ctx, queue.Task{Type: queue.TaskTypeAutoAssign, ConversationID: conv.ID}); err != nil {
		return fmt.Errorf("requesting assignment: %w", err)
	}
	return nil
}

// ensureSummary catches up conversations whose summary never landed.
// The returned conversation reflects any summary written in the meantime.
func (s *conversationService) ensureSummary(ctx context.Context, conv *model.Conversation) *model.Conversation {
	if conv.HasSummary() || conv.LastMessageAt == nil {
		return conv
	}
	count, err := s.stores.Messages().CountByConversation(ctx, conv.ID)
	if err != nil || count < SummaryThreshold {
		return conv
	}

	if err := s.runner.Run(ctx, queue.Task{Type: queue.TaskTypeGenerateSummary, ConversationID: conv.ID}); err != nil {
		slog.WarnContext(ctx, "failed to run summary", "error", err, "conversation_id", conv.ID)
		return conv
	}

	fresh, err := s.stores.Conversations().GetByID(ctx, conv.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "failed to reload conversation", "error", err, "conversation_id", conv.ID)
		}
		return conv
	}
	return fresh
}

func viewFor(ctx context.Context, stores StoreProvider, conv *model.Conversation, viewerID int64) (ConversationView, error) {
	unread, err := unreadCount(ctx, stores, conv, viewerID)
	if err != nil {
		return ConversationView{}, err
	}
	return ConversationView{Conversation: *conv, UnreadCount: unread}, nil
}

func viewsFor(ctx context.Context, stores StoreProvider, convs []model.Conversation, viewerID int64) ([]ConversationView, error) {
	views := make([]ConversationView, 0, len(convs))
	for i := range convs {
		view, err := viewFor(ctx, stores, &convs[i], viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
