package store

import (
	"context"
	"errors"
	"time"

	"basegraph.app/helpdesk/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write violates a unique constraint
var ErrDuplicate = errors.New("duplicate")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	TouchLastActive(ctx context.Context, id int64, at time.Time) error
}

// ExpertProfileStore defines the contract for expert profile data access
type ExpertProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*model.ExpertProfile, error)
	List(ctx context.Context) ([]model.ExpertProfile, error)
	Create(ctx context.Context, profile *model.ExpertProfile) error
	Update(ctx context.Context, profile *model.ExpertProfile) error
}

// ConversationStore defines the contract for conversation data access.
// Reads return the joined view with initiator and expert usernames.
type ConversationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Conversation, error)
	Create(ctx context.Context, conv *model.Conversation) error
	ListForUser(ctx context.Context, userID int64) ([]model.Conversation, error)
	ListForUserSince(ctx context.Context, userID int64, since time.Time) ([]model.Conversation, error)
	ListWaiting(ctx context.Context) ([]model.Conversation, error)
	ListWaitingSince(ctx context.Context, since time.Time) ([]model.Conversation, error)
	ListAssigned(ctx context.Context, expertID int64) ([]model.Conversation, error)
	ListAssignedSince(ctx context.Context, expertID int64, since time.Time) ([]model.Conversation, error)
	// MaxWaitingUpdatedAt returns nil when the waiting set is empty.
	MaxWaitingUpdatedAt(ctx context.Context) (*time.Time, error)

	// AssignIfUnassigned sets the expert and activates the conversation only
	// while no expert is assigned. It reports false when the write lost the race.
	AssignIfUnassigned(ctx context.Context, id, expertID int64) (bool, error)
	// Release clears the expert and returns the conversation to waiting only
	// while expertID is the current assignee.
	Release(ctx context.Context, id, expertID int64) (bool, error)
	PromoteToActive(ctx context.Context, id int64) error
	TouchLastMessage(ctx context.Context, id int64, at time.Time) error
	SetSummaryIfBlank(ctx context.Context, id int64, summary string) (bool, error)
}

// MessageStore defines the contract for message data access
type MessageStore interface {
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	Create(ctx context.Context, msg *model.Message) error
	ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error)
	ListEarliest(ctx context.Context, conversationID int64, limit int32) ([]model.Message, error)
	CountByConversation(ctx context.Context, conversationID int64) (int64, error)
	CountUnread(ctx context.Context, conversationID, viewerID int64) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	ListForUserSince(ctx context.Context, userID int64, since time.Time) ([]model.Message, error)
}

// ExpertAssignmentStore defines the contract for assignment record data access
type ExpertAssignmentStore interface {
	Create(ctx context.Context, assignment *model.ExpertAssignment) error
	// ResolveLatest resolves the most recently assigned record for the pair.
	ResolveLatest(ctx context.Context, conversationID, expertProfileID int64, at time.Time) (*model.ExpertAssignment, error)
	ListByExpert(ctx context.Context, expertProfileID int64) ([]model.ExpertAssignment, error)
}
