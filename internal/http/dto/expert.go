package dto

import (
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/service"
)

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type UpdateExpertProfileRequest struct {
	ExpertProfile struct {
		Bio                *string    `json:"bio"`
		KnowledgeBaseLinks []string   `json:"knowledge_base_links"`
		FAQ                []FAQEntry `json:"faq"`
	} `json:"expert_profile"`
}

func (r UpdateExpertProfileRequest) ToUpdate() service.ProfileUpdate {
	faq := make([]model.FAQEntry, 0, len(r.ExpertProfile.FAQ))
	for _, e := range r.ExpertProfile.FAQ {
		faq = append(faq, model.FAQEntry{Question: e.Question, Answer: e.Answer})
	}
	return service.ProfileUpdate{
		Bio:                r.ExpertProfile.Bio,
		KnowledgeBaseLinks: r.ExpertProfile.KnowledgeBaseLinks,
		FAQ:                faq,
	}
}

type ExpertProfileResponse struct {
	ID                 int64      `json:"id,string"`
	Bio                *string    `json:"bio"`
	KnowledgeBaseLinks []string   `json:"knowledgeBaseLinks"`
	FAQ                []FAQEntry `json:"faq"`
}

func ToExpertProfileResponse(p *model.ExpertProfile) ExpertProfileResponse {
	links := p.KnowledgeBaseLinks
	if links == nil {
		links = []string{}
	}
	faq := make([]FAQEntry, 0, len(p.FAQ))
	for _, e := range p.FAQ {
		faq = append(faq, FAQEntry{Question: e.Question, Answer: e.Answer})
	}
	return ExpertProfileResponse{
		ID:                 p.ID,
		Bio:                p.Bio,
		KnowledgeBaseLinks: links,
		FAQ:                faq,
	}
}

type AssignmentResponse struct {
	ID             int64   `json:"id,string"`
	ConversationID int64   `json:"conversationId,string"`
	ExpertID       int64   `json:"expertId,string"`
	Status         string  `json:"status"`
	AssignedAt     string  `json:"assignedAt"`
	ResolvedAt     *string `json:"resolvedAt"`
	// Rating is always null. Nothing collects ratings yet.
	Rating *int `json:"rating"`
}

func ToAssignmentResponses(history []model.ExpertAssignment) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(history))
	for _, a := range history {
		out = append(out, AssignmentResponse{
			ID:             a.ID,
			ConversationID: a.ConversationID,
			ExpertID:       a.ExpertProfileID,
			Status:         string(a.Status),
			AssignedAt:     formatTime(a.AssignedAt),
			ResolvedAt:     formatTimePtr(a.ResolvedAt),
		})
	}
	return out
}
