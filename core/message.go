package core

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author side of a conversation message.
type Role string

const (
	// RoleUser marks a message authored by the end user.
	RoleUser Role = "user"
	// RoleAssistant marks a message authored by the assistant.
	RoleAssistant Role = "assistant"
)

// Message is a single conversational exchange entry. After being appended to
// a conversation it should be treated as immutable. Timestamp is assigned by
// the owning conversation at append time; constructors leave it zero.
type Message struct {
	ID        string         `json:"id"`
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewMessage creates a message with a fresh unique id and no timestamp.
func NewMessage(role Role, content string) Message {
	return Message{ID: NewID(), Role: role, Content: content}
}

// NewUserMessage is a convenience wrapper for a user-authored message.
func NewUserMessage(content string) Message { return NewMessage(RoleUser, content) }

// NewAssistantMessage is a convenience wrapper for an assistant-authored message.
func NewAssistantMessage(content string) Message { return NewMessage(RoleAssistant, content) }

// WithMetadata returns a copy of the message carrying the provided metadata map.
func (m Message) WithMetadata(md map[string]any) Message {
	m.Metadata = md
	return m
}

// NewID generates a new unique identifier for messages.
func NewID() string { return uuid.NewString() }
