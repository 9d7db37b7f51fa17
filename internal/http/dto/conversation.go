package dto

import (
	"basegraph.app/helpdesk/common/id"
	"basegraph.app/helpdesk/internal/service"
)

type CreateConversationRequest struct {
	Title string `json:"title"`
}

type ConversationResponse struct {
	ID                     int64   `json:"id,string"`
	Title                  string  `json:"title"`
	Status                 string  `json:"status"`
	QuestionerID           int64   `json:"questionerId,string"`
	QuestionerUsername     string  `json:"questionerUsername"`
	AssignedExpertID       *string `json:"assignedExpertId"`
	AssignedExpertUsername *string `json:"assignedExpertUsername"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
	LastMessageAt          *string `json:"lastMessageAt"`
	UnreadCount            int64   `json:"unreadCount"`
	Summary                *string `json:"summary"`
}

func ToConversationResponse(v service.ConversationView) ConversationResponse {
	return ConversationResponse{
		ID:                     v.ID,
		Title:                  v.Title,
		Status:                 string(v.Status),
		QuestionerID:           v.InitiatorID,
		QuestionerUsername:     v.InitiatorUsername,
		AssignedExpertID:       id.FormatPtr(v.AssignedExpertID),
		AssignedExpertUsername: v.AssignedExpertUsername,
		CreatedAt:              formatTime(v.CreatedAt),
		UpdatedAt:              formatTime(v.UpdatedAt),
		LastMessageAt:          formatTimePtr(v.LastMessageAt),
		UnreadCount:            v.UnreadCount,
		Summary:                v.Summary,
	}
}

func ToConversationResponses(views []service.ConversationView) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToConversationResponse(v))
	}
	return out
}

type ExpertQueueResponse struct {
	WaitingConversations  []ConversationResponse `json:"waitingConversations"`
	AssignedConversations []ConversationResponse `json:"assignedConversations"`
}

func ToExpertQueueResponse(q *service.ExpertQueue) ExpertQueueResponse {
	return ExpertQueueResponse{
		WaitingConversations:  ToConversationResponses(q.Waiting),
		AssignedConversations: ToConversationResponses(q.Assigned),
	}
}
