package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"basegraph.app/helpdesk/common"
	"basegraph.app/helpdesk/internal/oracle"
	"basegraph.app/helpdesk/internal/store"
)

const (
	// SummaryThreshold is the message count at which a conversation earns a summary.
	SummaryThreshold = 3

	summaryTranscriptLimit = 20
	summaryFallbackLength  = 100
	noSummary              = "No summary available"
)

type SummaryEngine interface {
	// MaybeSummarize writes a summary at most once. applied reports whether this call wrote it.
	MaybeSummarize(ctx context.Context, conversationID int64) (applied bool, err error)
}

type summaryEngine struct {
	stores StoreProvider
	oracle oracle.Oracle
}

func NewSummaryEngine(stores StoreProvider, o oracle.Oracle) SummaryEngine {
	return &summaryEngine{stores: stores, oracle: o}
}

func (e *summaryEngine) MaybeSummarize(ctx context.Context, conversationID int64) (bool, error) {
	conv, err := e.stores.Conversations().GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading conversation: %w", err)
	}
	if conv.HasSummary() {
		return false, nil
	}

	count, err := e.stores.Messages().CountByConversation(ctx, conv.ID)
	if err != nil {
		return false, fmt.Errorf("counting messages: %w", err)
	}
	if count < SummaryThreshold {
		return false, nil
	}

	messages, err := e.stores.Messages().ListEarliest(ctx, conv.ID, summaryTranscriptLimit)
	if err != nil {
		return false, fmt.Errorf("loading messages: %w", err)
	}

	summary, err := e.oracle.Summarize(ctx, transcript(messages))
	if err != nil {
		slog.WarnContext(ctx, "summary fell back to first message", "error", err)
		summary = ""
		if len(messages) > 0 {
			summary = common.Truncate(strings.TrimSpace(messages[0].Content), summaryFallbackLength)
		}
	}
	if common.IsBlank(summary) {
		summary = noSummary
	}

	applied, err := e.stores.Conversations().SetSummaryIfBlank(ctx, conv.ID, summary)
	if err != nil {
		return false, fmt.Errorf("saving summary: %w", err)
	}
	if applied {
		slog.InfoContext(ctx, "conversation summarized", "conversation_id", conv.ID)
	}
	return applied, nil
}
