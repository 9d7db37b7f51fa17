package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"basegraph.app/helpdesk/internal/cache"
	"basegraph.app/helpdesk/internal/model"
)

const waitingQueueKey = "expert_queue_waiting"

// ExpertQueue is what an expert sees on the queue page.
type ExpertQueue struct {
	Waiting  []ConversationView
	Assigned []ConversationView
}

type QueueService interface {
	ExpertQueue(ctx context.Context, expert *model.User) (*ExpertQueue, error)
	// Waiting is shared by every expert, so it may be served from cache.
	Waiting(ctx context.Context) ([]model.Conversation, error)
}

type queueService struct {
	stores StoreProvider
	cache  cache.Cache
	ttl    time.Duration
}

// NewQueueService builds the queue reader. A nil cache reads straight from the store.
func NewQueueService(stores StoreProvider, c cache.Cache, ttl time.Duration) QueueService {
	return &queueService{
		stores: stores,
		cache:  c,
		ttl:    ttl,
	}
}

func (s *queueService) ExpertQueue(ctx context.Context, expert *model.User) (*ExpertQueue, error) {
	if _, err := requireProfile(ctx, s.stores, expert); err != nil {
		return nil, err
	}

	waiting, err := s.Waiting(ctx)
	if err != nil {
		return nil, err
	}
	assigned, err := s.stores.Conversations().ListAssigned(ctx, expert.ID)
	if err != nil {
		return nil, fmt.Errorf("listing assigned conversations: %w", err)
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

func (s *queueService) Waiting(ctx context.Context) ([]model.Conversation, error) {
	if s.cache == nil {
		return s.loadWaiting(ctx)
	}

	newest, err := s.stores.Conversations().MaxWaitingUpdatedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading waiting queue version: %w", err)
	}
	key := waitingCacheKey(newest)

	raw, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var convs []model.Conversation
		if err := json.Unmarshal([]byte(raw), &convs); err == nil {
			return convs, nil
		}
		slog.WarnContext(ctx, "discarding unreadable queue cache entry", "key", key)
	case errors.Is(err, cache.ErrMiss):
	default:
		slog.WarnContext(ctx, "queue cache read failed", "error", err)
	}

	convs, err := s.loadWaiting(ctx)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(convs); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded), s.ttl); err != nil {
			slog.WarnContext(ctx, "queue cache write failed", "error", err)
		}
	}
	return convs, nil
}

func (s *queueService) loadWaiting(ctx context.Context) ([]model.Conversation, error) {
	convs, err := s.stores.Conversations().ListWaiting(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing waiting conversations: %w", err)
	}
	return convs, nil
}

// waitingCacheKey changes whenever any waiting conversation is touched, so
// stale entries are never read back. They simply expire.
func waitingCacheKey(newest *time.Time) string {
	if newest == nil {
		return waitingQueueKey + "/empty"
	}
	sum := xxhash.Sum64String(newest.UTC().Format(time.RFC3339Nano))
	return waitingQueueKey + "/" + strconv.FormatUint(sum, 16)
}
