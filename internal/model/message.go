package model

import "time"

type SenderRole string

const (
	SenderRoleInitiator SenderRole = "initiator"
	SenderRoleExpert    SenderRole = "expert"
)

type Message struct {
	ID             int64      `json:"id"`
	ConversationID int64      `json:"conversation_id"`
	SenderID       int64      `json:"sender_id"`
	SenderUsername string     `json:"sender_username"`
	SenderRole     SenderRole `json:"sender_role"`
	Content        string     `json:"content"`
	IsRead         bool       `json:"is_read"`
	CreatedAt      time.Time  `json:"created_at"`
}
