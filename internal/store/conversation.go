package store

import (
	"context"
	"errors"
	"time"

	"basegraph.app/helpdesk/core/db/sqlc"
	"basegraph.app/helpdesk/internal/model"
	"github.com/jackc/pgx/v5"
)

type conversationStore struct {
	queries *sqlc.Queries
}

func newConversationStore(queries *sqlc.Queries) ConversationStore {
	return &conversationStore{queries: queries}
}

func (s *conversationStore) GetByID(ctx context.Context, id int64) (*model.Conversation, error) {
	row, err := s.queries.GetConversationDetail(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toConversationModel(row), nil
}

func (s *conversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	row, err := s.queries.CreateConversation(ctx, sqlc.CreateConversationParams{
		ID:          conv.ID,
		Title:       conv.Title,
		InitiatorID: conv.InitiatorID,
	})
	if err != nil {
		return err
	}
	conv.Status = model.ConversationStatus(row.Status)
	conv.AssignedExpertID = row.AssignedExpertID
	conv.Summary = row.Summary
	conv.LastMessageAt = pgTimestamptzToTime(row.LastMessageAt)
	conv.CreatedAt = row.CreatedAt.Time
	conv.UpdatedAt = row.UpdatedAt.Time
	return nil
}

func (s *conversationStore) ListForUser(ctx context.Context, userID int64) ([]model.Conversation, error) {
	rows, err := s.queries.ListConversationDetailsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toConversationModels(rows), nil
}

func (s *conversationStore) ListForUserSince(ctx context.Context, userID int64, since time.Time) ([]model.Conversation, error) {
	rows, err := s.queries.ListConversationDetailsForUserSince(ctx, sqlc.ListConversationDetailsForUserSinceParams{
		UserID: userID,
		Since:  timeToPgTimestamptz(&since),
	})
	if err != nil {
		return nil, err
	}
	return toConversationModels(rows), nil
}

func (s *conversationStore) ListWaiting(ctx context.Context) ([]model.Conversation, error) {
	rows, err := s.queries.ListWaitingConversationDetails(ctx)
	if err != nil {
		return nil, err
	}
	return toConversationModels(rows), nil
}

func (s *conversationStore) ListWaitingSince(ctx context.Context, since time.Time) ([]model.Conversation, error) {
	rows, err := s.queries.ListWaitingConversationDetailsSince(ctx, timeToPgTimestamptz(&since))
	if err != nil {
		return nil, err
	}
	return toConversationModels(rows), nil
}

func (s *conversationStore) ListAssigned(ctx context.Context, expertID int64) ([]model.Conversation, error) {
	rows, err := s.queries.ListAssignedConversationDetails(ctx, &expertID)
	if err != nil {
		return nil, err
	}
	return toConversationModels(rows), nil
}

func (s *conversationStore) ListAssignedSince(ctx context.Context, expertID int64, since time.Time) ([]model.Conversation, error) {
	rows, err := s.queries.ListAssignedConversationDetailsSince(ctx, sqlc.ListAssignedConversationDetailsSinceParams{
		AssignedExpertID: &expertID,
		UpdatedAt:        timeToPgTimestamptz(&since),
	})
	if err != nil {
		return nil, err
	}
	return toConversationModels(rows), nil
}

func (s *conversationStore) MaxWaitingUpdatedAt(ctx context.Context) (*time.Time, error) {
	ts, err := s.queries.GetMaxWaitingUpdatedAt(ctx)
	if err != nil {
		return nil, err
	}
	return pgTimestamptzToTime(ts), nil
}

func (s *conversationStore) AssignIfUnassigned(ctx context.Context, id, expertID int64) (bool, error) {
	_, err := s.queries.AssignConversationIfUnassigned(ctx, sqlc.AssignConversationIfUnassignedParams{
		ID:               id,
		AssignedExpertID: &expertID,
	})
	return affected(err)
}

func (s *conversationStore) Release(ctx context.Context, id, expertID int64) (bool, error) {
	_, err := s.queries.ReleaseConversation(ctx, sqlc.ReleaseConversationParams{
		ID:               id,
		AssignedExpertID: &expertID,
	})
	return affected(err)
}

func (s *conversationStore) PromoteToActive(ctx context.Context, id int64) error {
	return s.queries.PromoteConversationToActive(ctx, id)
}

func (s *conversationStore) TouchLastMessage(ctx context.Context, id int64, at time.Time) error {
	return s.queries.TouchConversationLastMessage(ctx, sqlc.TouchConversationLastMessageParams{
		ID:            id,
		LastMessageAt: timeToPgTimestamptz(&at),
	})
}

func (s *conversationStore) SetSummaryIfBlank(ctx context.Context, id int64, summary string) (bool, error) {
	_, err := s.queries.SetConversationSummaryIfBlank(ctx, sqlc.SetConversationSummaryIfBlankParams{
		ID:      id,
		Summary: &summary,
	})
	return affected(err)
}

// affected turns a conditional RETURNING query result into a hit flag.
func affected(err error) (bool, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toConversationModel(row sqlc.ConversationDetail) *model.Conversation {
	return &model.Conversation{
		ID:                     row.ID,
		Title:                  row.Title,
		Status:                 model.ConversationStatus(row.Status),
		InitiatorID:            row.InitiatorID,
		InitiatorUsername:      row.InitiatorUsername,
		AssignedExpertID:       row.AssignedExpertID,
		AssignedExpertUsername: row.AssignedExpertUsername,
		Summary:                row.Summary,
		LastMessageAt:          pgTimestamptzToTime(row.LastMessageAt),
		CreatedAt:              row.CreatedAt.Time,
		UpdatedAt:              row.UpdatedAt.Time,
	}
}

func toConversationModels(rows []sqlc.ConversationDetail) []model.Conversation {
	result := make([]model.Conversation, len(rows))
	for i, row := range rows {
		result[i] = *toConversationModel(row)
	}
	return result
}
