// Package oracle is the client side of the natural-language decision service
// used for expert selection, FAQ rephrasing and conversation summaries.
package oracle

import (
	"context"
	"errors"
	"time"

	"basegraph.app/helpdesk/internal/model"
)

const (
	// NoneSentinel is what the model answers when no candidate fits.
	NoneSentinel = "NONE"
	// DeclineSentinel is what the model answers when the FAQ does not cover the question.
	DeclineSentinel = "NO_ANSWER"
)

var (
	ErrDisabled     = errors.New("oracle: no llm configured")
	ErrNoToolCall   = errors.New("oracle: model did not call the required tool")
	ErrEmptySummary = errors.New("oracle: empty summary")
)

// Candidate is an expert the oracle may pick. ID is the expert profile id.
type Candidate struct {
	ID                 int64
	Username           string
	Bio                *string
	KnowledgeBaseLinks []string
}

type TranscriptLine struct {
	Role    model.SenderRole
	Content string
}

// DecisionContext is what the oracle sees about a conversation when routing it.
type DecisionContext struct {
	Title     string
	Status    model.ConversationStatus
	CreatedAt time.Time
	Messages  []TranscriptLine
}

type Oracle interface {
	// SelectExpert returns the chosen candidate id, or nil when the model
	// declines or its answer cannot be read as an id.
	SelectExpert(ctx context.Context, dc DecisionContext, candidates []Candidate) (*int64, error)
	// RephraseOrDecline returns ok=false when the FAQ cannot answer the question.
	RephraseOrDecline(ctx context.Context, faq []model.FAQEntry, question string) (answer string, ok bool, err error)
	Summarize(ctx context.Context, transcript []TranscriptLine) (string, error)
}

type disabledOracle struct{}

// NewDisabled returns an Oracle that fails every call with ErrDisabled.
// Callers treat that like any other oracle failure and skip the automation.
func NewDisabled() Oracle {
	return disabledOracle{}
}

func (disabledOracle) SelectExpert(context.Context, DecisionContext, []Candidate) (*int64, error) {
	return nil, ErrDisabled
}

func (disabledOracle) RephraseOrDecline(context.Context, []model.FAQEntry, string) (string, bool, error) {
	return "", false, ErrDisabled
}

func (disabledOracle) Summarize(context.Context, []TranscriptLine) (string, error) {
	return "", ErrDisabled
}
