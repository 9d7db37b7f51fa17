package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"basegraph.app/helpdesk/common/id"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/oracle"
	"basegraph.app/helpdesk/internal/store"
)

type AutoResponseEngine interface {
	// TryRespond answers from the assigned expert's FAQ. ok is false whenever
	// there is nothing to say, including oracle failures.
	TryRespond(ctx context.Context, conv *model.Conversation, question string) (answer string, ok bool)
	// RespondTo answers one initiator message and posts the reply as the expert.
	RespondTo(ctx context.Context, conversationID, messageID int64) error
}

type autoResponseEngine struct {
	stores StoreProvider
	tx     TxRunner
	oracle oracle.Oracle
}

func NewAutoResponseEngine(stores StoreProvider, tx TxRunner, o oracle.Oracle) AutoResponseEngine {
	return &autoResponseEngine{
		stores: stores,
		tx:     tx,
		oracle: o,
	}
}

func (e *autoResponseEngine) TryRespond(ctx context.Context, conv *model.Conversation, question string) (string, bool) {
	if !conv.IsAssigned() {
		return "", false
	}

	profile, err := e.stores.ExpertProfiles().GetByUserID(ctx, *conv.AssignedExpertID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "failed to load expert profile for auto-response", "error", err)
		}
		return "", false
	}
	if len(profile.FAQ) == 0 {
		return "", false
	}

	answer, ok, err := e.oracle.RephraseOrDecline(ctx, profile.FAQ, question)
	if err != nil {
		slog.WarnContext(ctx, "auto-response skipped", "error", err)
		return "", false
	}
	return answer, ok
}

func (e *autoResponseEngine) RespondTo(ctx context.Context, conversationID, messageID int64) error {
	conv, err := e.stores.Conversations().GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "auto-response target conversation gone")
			return nil
		}
		return fmt.Errorf("loading conversation: %w", err)
	}

	question, err := e.stores.Messages().GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "auto-response target message gone")
			return nil
		}
		return fmt.Errorf("loading message: %w", err)
	}
	if question.ConversationID != conv.ID || question.SenderRole != model.SenderRoleInitiator {
		return nil
	}

	answer, ok := e.TryRespond(ctx, conv, question.Content)
	if !ok {
		return nil
	}

	expert, err := e.stores.Users().GetByID(ctx, *conv.AssignedExpertID)
	if err != nil {
		return fmt.Errorf("loading expert: %w", err)
	}

	reply := &model.Message{
		ID:             id.New(),
		ConversationID: conv.ID,
		SenderID:       expert.ID,
		SenderUsername: expert.Username,
		SenderRole:     model.SenderRoleExpert,
		Content:        answer,
	}
	err = e.tx.WithTx(ctx, func(stores StoreProvider) error {
		if err := stores.Messages().Create(ctx, reply); err != nil {
			return fmt.Errorf("creating auto-response: %w", err)
		}
		return stores.Conversations().TouchLastMessage(ctx, conv.ID, reply.CreatedAt)
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "auto-response posted",
		"conversation_id", conv.ID,
		"reply_message_id", reply.ID)
	return nil
}
