package model

import (
	"context"
	"fmt"

	"github.com/askdesk/askdesk/core"
)

// PromptMessage is one ordered conversation message of a completion request.
type PromptMessage struct {
	Role    core.Role `json:"role"`
	Content string    `json:"content"`
}

// Request captures the normalized completion input produced by the router:
// a fixed system persona followed by the ordered conversation window.
type Request struct {
	Persona     string          `json:"persona"`
	Messages    []PromptMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
	MaxTokens   int64           `json:"max_tokens,omitempty"`
}

// Completer is the minimal interface required to drive the generative
// fallback tier. Implementations must honor ctx cancellation; the router
// bounds every call with a timeout.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)

	// Info returns information about the completer implementation.
	Info() Info
}

// Info contains metadata about a completer implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// MockCompleter is a lightweight in-memory Completer useful for tests and
// examples. Canned responses are keyed by the last message content.
type MockCompleter struct {
	responses map[string]string
	err       error
}

// NewMockCompleter constructs an empty MockCompleter.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{responses: make(map[string]string)}
}

// AddResponse registers a deterministic canned completion for an input.
func (m *MockCompleter) AddResponse(input, response string) { m.responses[input] = response }

// FailWith makes every Complete call return err.
func (m *MockCompleter) FailWith(err error) { m.err = err }

// Complete implements Completer.
func (m *MockCompleter) Complete(ctx context.Context, req Request) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	last := req.Messages[len(req.Messages)-1].Content
	if resp, ok := m.responses[last]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", last), nil
}

// Info implements Completer.
func (m *MockCompleter) Info() Info { return Info{Name: "mock", Provider: "mock"} }
