package model

import (
	"strings"
	"time"
)

type ConversationStatus string

const (
	ConversationStatusWaiting ConversationStatus = "waiting"
	ConversationStatusActive  ConversationStatus = "active"
	// ConversationStatusResolved is accepted by the schema but nothing transitions into it yet.
	ConversationStatusResolved ConversationStatus = "resolved"
)

func (s ConversationStatus) IsValid() bool {
	switch s {
	case ConversationStatusWaiting, ConversationStatusActive, ConversationStatusResolved:
		return true
	}
	return false
}

type Conversation struct {
	ID                     int64              `json:"id"`
	Title                  string             `json:"title"`
	Status                 ConversationStatus `json:"status"`
	InitiatorID            int64              `json:"initiator_id"`
	InitiatorUsername      string             `json:"initiator_username"`
	AssignedExpertID       *int64             `json:"assigned_expert_id,omitempty"`
	AssignedExpertUsername *string            `json:"assigned_expert_username,omitempty"`
	Summary                *string            `json:"summary,omitempty"`
	LastMessageAt          *time.Time         `json:"last_message_at,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

func (c *Conversation) IsAssigned() bool {
	return c.AssignedExpertID != nil
}

func (c *Conversation) IsAssignedTo(userID int64) bool {
	return c.AssignedExpertID != nil && *c.AssignedExpertID == userID
}

func (c *Conversation) IsInitiator(userID int64) bool {
	return c.InitiatorID == userID
}

// IsParticipant reports whether the user may see the conversation at all.
func (c *Conversation) IsParticipant(userID int64) bool {
	return c.IsInitiator(userID) || c.IsAssignedTo(userID)
}

func (c *Conversation) HasSummary() bool {
	return c.Summary != nil && strings.TrimSpace(*c.Summary) != ""
}

// RoleFor derives the sender role from identity. ok is false for anyone else.
func (c *Conversation) RoleFor(userID int64) (role SenderRole, ok bool) {
	switch {
	case c.IsInitiator(userID):
		return SenderRoleInitiator, true
	case c.IsAssignedTo(userID):
		return SenderRoleExpert, true
	}
	return "", false
}
