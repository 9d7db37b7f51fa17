package store

import (
	"context"
	"errors"
	"time"

	"basegraph.app/helpdesk/core/db/sqlc"
	"basegraph.app/helpdesk/internal/model"
	"github.com/jackc/pgx/v5"
)

type expertAssignmentStore struct {
	queries *sqlc.Queries
}

func newExpertAssignmentStore(queries *sqlc.Queries) ExpertAssignmentStore {
	return &expertAssignmentStore{queries: queries}
}

func (s *expertAssignmentStore) Create(ctx context.Context, assignment *model.ExpertAssignment) error {
	row, err := s.queries.CreateExpertAssignment(ctx, sqlc.CreateExpertAssignmentParams{
		ID:              assignment.ID,
		ConversationID:  assignment.ConversationID,
		ExpertProfileID: assignment.ExpertProfileID,
		AssignedAt:      timeToPgTimestamptz(&assignment.AssignedAt),
	})
	if err != nil {
		return err
	}
	*assignment = *toExpertAssignmentModel(row)
	return nil
}

func (s *expertAssignmentStore) ResolveLatest(ctx context.Context, conversationID, expertProfileID int64, at time.Time) (*model.ExpertAssignment, error) {
	row, err := s.queries.ResolveLatestExpertAssignment(ctx, sqlc.ResolveLatestExpertAssignmentParams{
		ConversationID:  conversationID,
		ExpertProfileID: expertProfileID,
		ResolvedAt:      timeToPgTimestamptz(&at),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toExpertAssignmentModel(row), nil
}

func (s *expertAssignmentStore) ListByExpert(ctx context.Context, expertProfileID int64) ([]model.ExpertAssignment, error) {
	rows, err := s.queries.ListExpertAssignmentsByExpert(ctx, expertProfileID)
	if err != nil {
		return nil, err
	}
	result := make([]model.ExpertAssignment, len(rows))
	for i, row := range rows {
		result[i] = *toExpertAssignmentModel(row)
	}
	return result, nil
}

func toExpertAssignmentModel(row sqlc.ExpertAssignment) *model.ExpertAssignment {
	return &model.ExpertAssignment{
		ID:              row.ID,
		ConversationID:  row.ConversationID,
		ExpertProfileID: row.ExpertProfileID,
		Status:          model.AssignmentStatus(row.Status),
		AssignedAt:      row.AssignedAt.Time,
		ResolvedAt:      pgTimestamptzToTime(row.ResolvedAt),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
