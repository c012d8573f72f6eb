package model

import (
	"context"
	"fmt"

	"github.com/rkuma18/currency-agent/core"
)

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// Request captures the normalized model input produced by the chat driver.
type Request struct {
	Instructions string           `json:"instructions"` // System instructions for the model
	Contents     []core.Content   `json:"contents"`     // Conversation converted to provider messages
	Tools        []ToolDefinition `json:"tools,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the model's complete reply to one request. Content may carry
// text parts, function call parts, or both.
type Response struct {
	Content      core.Content `json:"content"`
	FinishReason string       `json:"finish_reason"` // "stop", "length", "tool_calls", etc.
	Usage        *TokenUsage  `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "mock", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface required to drive generation. Generate is a
// single blocking round trip; the driver is strictly sequential and bounds
// the call through ctx.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses and errors are replayed in the order they were enqueued.
type MockModel struct {
	info    Info
	scripts []scripted
	calls   []Request
}

type scripted struct {
	resp *Response
	err  error
}

// NewMockModel constructs a MockModel with tool support enabled.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info: Info{Name: name, Provider: "mock", SupportsTools: true},
	}
}

// EnqueueText scripts a plain assistant text reply.
func (m *MockModel) EnqueueText(text string) {
	m.Enqueue(&Response{
		Content:      core.Content{Role: "assistant", Parts: []core.Part{core.TextPart{Text: text}}},
		FinishReason: "stop",
	})
}

// EnqueueToolCalls scripts an assistant turn requesting the given function calls.
func (m *MockModel) EnqueueToolCalls(calls ...core.FunctionCall) {
	parts := make([]core.Part, 0, len(calls))
	for _, fc := range calls {
		parts = append(parts, core.FunctionCallPart{FunctionCall: fc})
	}
	m.Enqueue(&Response{
		Content:      core.Content{Role: "assistant", Parts: parts},
		FinishReason: "tool_calls",
	})
}

// Enqueue scripts a raw response.
func (m *MockModel) Enqueue(resp *Response) {
	m.scripts = append(m.scripts, scripted{resp: resp})
}

// EnqueueError scripts a generation failure.
func (m *MockModel) EnqueueError(err error) {
	m.scripts = append(m.scripts, scripted{err: err})
}

// Requests returns the requests seen so far, in order.
func (m *MockModel) Requests() []Request { return m.calls }

// Generate implements Model by replaying the scripted queue. When the queue
// is exhausted, the last script is repeated so indefinitely-looping
// scenarios can be expressed with a single entry.
func (m *MockModel) Generate(_ context.Context, req Request) (*Response, error) {
	m.calls = append(m.calls, req)
	if len(m.scripts) == 0 {
		return nil, fmt.Errorf("mock model has no scripted responses")
	}
	s := m.scripts[0]
	if len(m.scripts) > 1 {
		m.scripts = m.scripts[1:]
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
