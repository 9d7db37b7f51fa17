package model

import "time"

type AssignmentStatus string

const (
	AssignmentStatusActive   AssignmentStatus = "active"
	AssignmentStatusResolved AssignmentStatus = "resolved"
)

type ExpertAssignment struct {
	ID              int64            `json:"id"`
	ConversationID  int64            `json:"conversation_id"`
	ExpertProfileID int64            `json:"expert_profile_id"`
	Status          AssignmentStatus `json:"status"`
	AssignedAt      time.Time        `json:"assigned_at"`
	ResolvedAt      *time.Time       `json:"resolved_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
