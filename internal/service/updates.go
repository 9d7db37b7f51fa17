package service

import (
	"context"
	"fmt"
	"time"

	"basegraph.app/helpdesk/internal/model"
)

// DefaultUpdatesWindow applies when a poller sends no since.
const DefaultUpdatesWindow = time.Hour

// UpdatesService backs the polling endpoints. Every method is read-only.
type UpdatesService interface {
	Conversations(ctx context.Context, user *model.User, since *time.Time) ([]ConversationView, error)
	Messages(ctx context.Context, user *model.User, since *time.Time) ([]model.Message, error)
	ExpertQueue(ctx context.Context, expert *model.User, since *time.Time) (*ExpertQueue, error)
}

type updatesService struct {
	stores StoreProvider
	now    func() time.Time
}

func NewUpdatesService(stores StoreProvider) UpdatesService {
	return &updatesService{stores: stores, now: time.Now}
}

func (s *updatesService) since(since *time.Time) time.Time {
	if since == nil {
		return s.now().Add(-DefaultUpdatesWindow)
	}
	return *since
}

func (s *updatesService) Conversations(ctx context.Context, user *model.User, since *time.Time) ([]ConversationView, error) {
	convs, err := s.stores.Conversations().ListForUserSince(ctx, user.ID, s.since(since))
	if err != nil {
		return nil, fmt.Errorf("listing conversation updates: %w", err)
	}
	return viewsFor(ctx, s.stores, convs, user.ID)
}

func (s *updatesService) Messages(ctx context.Context, user *model.User, since *time.Time) ([]model.Message, error) {
	messages, err := s.stores.Messages().ListForUserSince(ctx, user.ID, s.since(since))
	if err != nil {
		return nil, fmt.Errorf("listing message updates: %w", err)
	}
	return messages, nil
}

func (s *updatesService) ExpertQueue(ctx context.Context, expert *model.User, since *time.Time) (*ExpertQueue, error) {
	if _, err := requireProfile(ctx, s.stores, expert); err != nil {
		return nil, err
	}
	from := s.since(since)

	waiting, err := s.stores.Conversations().ListWaitingSince(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("listing waiting updates: %w", err)
	}
	assigned, err := s.stores.Conversations().ListAssignedSince(ctx, expert.ID, from)
	if err != nil {
		return nil, fmt.Errorf("listing assigned updates: %w", err)
	}

	q := &ExpertQueue{}
	if q.Waiting, err = viewsFor(ctx, s.stores, waiting, expert.ID); err != nil {
		return nil, err
	}
	if q.Assigned, err = viewsFor(ctx, s.stores, assigned, expert.ID); err != nil {
		return nil, err
	}
	return q, nil
}
