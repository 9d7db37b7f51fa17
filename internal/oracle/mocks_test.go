package oracle

import (
	"context"

	"basegraph.app/helpdesk/common/llm"
)

type mockAgentClient struct {
	chatFn   func(ctx context.Context, req llm.AgentRequest) (*llm.AgentResponse, error)
	requests []llm.AgentRequest
}

func (m *mockAgentClient) ChatWithTools(ctx context.Context, req llm.AgentRequest) (*llm.AgentResponse, error) {
	m.requests = append(m.requests, req)
	if m.chatFn != nil {
		return m.chatFn(ctx, req)
	}
	return &llm.AgentResponse{}, nil
}

func (m *mockAgentClient) Model() string {
	return "mock"
}

func toolResponse(name, args string) *llm.AgentResponse {
	return &llm.AgentResponse{
		FinishReason: "tool_calls",
		ToolCalls:    []llm.ToolCall{{ID: "call_1", Name: name, Arguments: args}},
	}
}
