package model

import "time"

// FAQEntry is one canned question/answer pair owned by an expert.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ExpertProfile struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	Username           string     `json:"username"`
	Bio                *string    `json:"bio,omitempty"`
	KnowledgeBaseLinks []string   `json:"knowledge_base_links"`
	FAQ                []FAQEntry `json:"faq"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
