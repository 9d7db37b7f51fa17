package store

import (
	"context"
	"errors"
	"time"

	"basegraph.app/helpdesk/core/db/sqlc"
	"basegraph.app/helpdesk/internal/model"
	"github.com/jackc/pgx/v5"
)

type messageStore struct {
	queries *sqlc.Queries
}

func newMessageStore(queries *sqlc.Queries) MessageStore {
	return &messageStore{queries: queries}
}

func (s *messageStore) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	row, err := s.queries.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toMessageModel(row), nil
}

// Create persists the message unread. SenderUsername is left as set by the caller.
func (s *messageStore) Create(ctx context.Context, msg *model.Message) error {
	row, err := s.queries.CreateMessage(ctx, sqlc.CreateMessageParams{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		SenderRole:     string(msg.SenderRole),
		Content:        msg.Content,
	})
	if err != nil {
		return err
	}
	msg.IsRead = row.IsRead
	msg.CreatedAt = row.CreatedAt.Time
	return nil
}

func (s *messageStore) ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) {
	rows, err := s.queries.ListMessageDetailsByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return toMessageModels(rows), nil
}

func (s *messageStore) ListEarliest(ctx context.Context, conversationID int64, limit int32) ([]model.Message, error) {
	rows, err := s.queries.ListEarliestMessageDetails(ctx, sqlc.ListEarliestMessageDetailsParams{
		ConversationID: conversationID,
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}
	return toMessageModels(rows), nil
}

func (s *messageStore) CountByConversation(ctx context.Context, conversationID int64) (int64, error) {
	return s.queries.CountMessagesByConversation(ctx, conversationID)
}

func (s *messageStore) CountUnread(ctx context.Context, conversationID, viewerID int64) (int64, error) {
	return s.queries.CountUnreadMessages(ctx, sqlc.CountUnreadMessagesParams{
		ConversationID: conversationID,
		SenderID:       viewerID,
	})
}

func (s *messageStore) MarkRead(ctx context.Context, id int64) error {
	return s.queries.MarkMessageRead(ctx, id)
}

func (s *messageStore) ListForUserSince(ctx context.Context, userID int64, since time.Time) ([]model.Message, error) {
	rows, err := s.queries.ListMessageDetailsForUserSince(ctx, sqlc.ListMessageDetailsForUserSinceParams{
		UserID: userID,
		Since:  timeToPgTimestamptz(&since),
	})
	if err != nil {
		return nil, err
	}
	return toMessageModels(rows), nil
}

func toMessageModel(row sqlc.MessageDetail) *model.Message {
	return &model.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		SenderID:       row.SenderID,
		SenderUsername: row.SenderUsername,
		SenderRole:     model.SenderRole(row.SenderRole),
		Content:        row.Content,
		IsRead:         row.IsRead,
		CreatedAt:      row.CreatedAt.Time,
	}
}

func toMessageModels(rows []sqlc.MessageDetail) []model.Message {
	result := make([]model.Message, len(rows))
	for i, row := range rows {
		result[i] = *toMessageModel(row)
	}
	return result
}
