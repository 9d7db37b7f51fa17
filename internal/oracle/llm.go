package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"basegraph.app/helpdesk/common/llm"
	"basegraph.app/helpdesk/common/logger"
	"basegraph.app/helpdesk/internal/model"
)

const (
	selectExpertTool = "select_expert"
	answerTool       = "answer_question"
	summaryTool      = "write_summary"
)

type selectExpertArgs struct {
	ExpertID string `json:"expert_id" jsonschema:"required" jsonschema_description:"ID of the chosen expert, or NONE"`
}

type answerArgs struct {
	Answer string `json:"answer" jsonschema:"required" jsonschema_description:"Reply to send to the user, or NO_ANSWER"`
}

type summaryArgs struct {
	Summary string `json:"summary" jsonschema:"required" jsonschema_description:"Two to three sentence summary"`
}

type Config struct {
	Timeout   time.Duration
	MaxTokens int
}

type llmOracle struct {
	client  llm.AgentClient
	timeout time.Duration
	maxTok  int
}

// New builds an Oracle over a tool-calling LLM client. Every call is forced
// through a single tool so answers arrive as typed arguments.
func New(client llm.AgentClient, cfg Config) Oracle {
	maxTok := cfg.MaxTokens
	if maxTok <= 0 {
		maxTok = 500
	}
	return &llmOracle{client: client, timeout: cfg.Timeout, maxTok: maxTok}
}

func (o *llmOracle) SelectExpert(ctx context.Context, dc DecisionContext, candidates []Candidate) (*int64, error) {
	resp, err := o.call(ctx, "oracle.select_expert", llm.AgentRequest{
		Messages: []llm.Message{
			{Role: "system", Content: selectExpertSystemPrompt},
			{Role: "user", Content: buildSelectExpertPrompt(dc, candidates)},
		},
		Tools: []llm.Tool{{
			Name:        selectExpertTool,
			Description: "Record the expert chosen for this conversation.",
			Parameters:  llm.GenerateSchema[selectExpertArgs](),
		}},
		ToolChoice:  selectExpertTool,
		Temperature: llm.Temp(0.3),
	})
	if err != nil {
		return nil, err
	}

	tc, ok := llm.FindToolCall(resp, selectExpertTool)
	if !ok {
		slog.WarnContext(ctx, "oracle returned no expert selection", "finish_reason", resp.FinishReason)
		return nil, nil
	}
	args, err := llm.ParseToolArguments[selectExpertArgs](tc.Arguments)
	if err != nil {
		slog.WarnContext(ctx, "oracle expert selection unreadable", "error", err)
		return nil, nil
	}
	return parseExpertID(args.ExpertID), nil
}

// parseExpertID accepts only a bare positive integer. Everything else,
// including the NONE sentinel, means no candidate.
func parseExpertID(raw string) *int64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" || strings.EqualFold(cleaned, NoneSentinel) {
		return nil
	}
	id, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

func (o *llmOracle) RephraseOrDecline(ctx context.Context, faq []model.FAQEntry, question string) (string, bool, error) {
	resp, err := o.call(ctx, "oracle.rephrase_or_decline", llm.AgentRequest{
		Messages: []llm.Message{
			{Role: "system", Content: buildRephraseSystemPrompt(faq)},
			{Role: "user", Content: buildRephraseUserPrompt(question)},
		},
		Tools: []llm.Tool{{
			Name:        answerTool,
			Description: "Send the reply to the user, or NO_ANSWER.",
			Parameters:  llm.GenerateSchema[answerArgs](),
		}},
		ToolChoice:  answerTool,
		Temperature: llm.Temp(0.3),
	})
	if err != nil {
		return "", false, err
	}

	tc, ok := llm.FindToolCall(resp, answerTool)
	if !ok {
		return "", false, nil
	}
	args, err := llm.ParseToolArguments[answerArgs](tc.Arguments)
	if err != nil {
		slog.WarnContext(ctx, "oracle answer unreadable", "error", err)
		return "", false, nil
	}
	answer, ok := interpretAnswer(args.Answer)
	return answer, ok, nil
}

// interpretAnswer treats a blank answer or any mention of the decline sentinel as a decline.
func interpretAnswer(raw string) (string, bool) {
	answer := strings.TrimSpace(raw)
	if answer == "" || strings.Contains(answer, DeclineSentinel) {
		return "", false
	}
	return answer, true
}

func (o *llmOracle) Summarize(ctx context.Context, transcript []TranscriptLine) (string, error) {
	resp, err := o.call(ctx, "oracle.summarize", llm.AgentRequest{
		Messages: []llm.Message{
			{Role: "system", Content: summarizeSystemPrompt},
			{Role: "user", Content: buildSummarizePrompt(transcript)},
		},
		Tools: []llm.Tool{{
			Name:        summaryTool,
			Description: "Record the conversation summary.",
			Parameters:  llm.GenerateSchema[summaryArgs](),
		}},
		ToolChoice:  summaryTool,
		Temperature: llm.Temp(0.5),
	})
	if err != nil {
		return "", err
	}

	tc, ok := llm.FindToolCall(resp, summaryTool)
	if !ok {
		return "", ErrNoToolCall
	}
	args, err := llm.ParseToolArguments[summaryArgs](tc.Arguments)
	if err != nil {
		return "", err
	}
	summary := strings.TrimSpace(args.Summary)
	if summary == "" {
		return "", ErrEmptySummary
	}
	return summary, nil
}

func (o *llmOracle) call(ctx context.Context, span string, req llm.AgentRequest) (*llm.AgentResponse, error) {
	sc := logger.StartSpan(ctx, span)
	defer sc.End()
	ctx = sc.Context()

	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	req.MaxTokens = o.maxTok
	resp, err := o.client.ChatWithTools(ctx, req)
	if err != nil {
		sc.RecordError(err)
		return nil, fmt.Errorf("%s: %w", span, err)
	}
	return resp, nil
}
