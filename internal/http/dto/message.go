package dto

import "basegraph.app/helpdesk/internal/model"

type CreateMessageRequest struct {
	ConversationID FlexibleID `json:"conversation_id" binding:"required"`
	Content        string     `json:"content"`
}

type MessageResponse struct {
	ID             int64  `json:"id,string"`
	ConversationID int64  `json:"conversationId,string"`
	SenderID       int64  `json:"senderId,string"`
	SenderUsername string `json:"senderUsername"`
	SenderRole     string `json:"senderRole"`
	Content        string `json:"content"`
	Timestamp      string `json:"timestamp"`
	IsRead         bool   `json:"isRead"`
}

func ToMessageResponse(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderUsername: m.SenderUsername,
		SenderRole:     string(m.SenderRole),
		Content:        m.Content,
		Timestamp:      formatTime(m.CreatedAt),
		IsRead:         m.IsRead,
	}
}

func ToMessageResponses(messages []model.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, ToMessageResponse(&messages[i]))
	}
	return out
}
