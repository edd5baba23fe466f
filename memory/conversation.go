package memory

import (
	"sync"
	"time"

	"github.com/askdesk/askdesk/core"
)

// DefaultMaxMessages is the retained message bound applied when none is configured.
const DefaultMaxMessages = 10

// Conversation is a bounded, ordered log of exchanged messages. Appending
// beyond the bound evicts from the head. Safe for concurrent access.
//
// Timestamps are assigned here at append time using wall-clock time; no other
// component may backdate a message.
type Conversation struct {
	mu       sync.RWMutex
	max      int
	messages []core.Message
	now      func() time.Time
}

// NewConversation creates an empty conversation retaining at most max
// messages (DefaultMaxMessages when max is non-positive).
func NewConversation(max int) *Conversation {
	if max <= 0 {
		max = DefaultMaxMessages
	}
	return &Conversation{max: max, now: time.Now}
}

// Append stamps the message with the current time and adds it to the tail,
// evicting the oldest message once the bound is exceeded. The stored message
// (with its timestamp) is returned.
func (c *Conversation) Append(msg core.Message) core.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg.Timestamp = c.now()
	c.messages = append(c.messages, msg)
	if len(c.messages) > c.max {
		c.messages = c.messages[len(c.messages)-c.max:]
	}
	return msg
}

// AppendUser appends a user-authored text message.
func (c *Conversation) AppendUser(content string) core.Message {
	return c.Append(core.NewUserMessage(content))
}

// AppendAssistant appends an assistant-authored text message with metadata.
func (c *Conversation) AppendAssistant(content string, metadata map[string]any) core.Message {
	return c.Append(core.NewAssistantMessage(content).WithMetadata(metadata))
}

// RecentWindow returns the last n messages in chronological order.
func (c *Conversation) RecentWindow(n int) []core.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if n <= 0 {
		return nil
	}
	if n > len(c.messages) {
		n = len(c.messages)
	}
	out := make([]core.Message, n)
	copy(out, c.messages[len(c.messages)-n:])
	return out
}

// Messages returns a defensive copy of the full retained log.
func (c *Conversation) Messages() []core.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]core.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of retained messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Max returns the configured retention bound.
func (c *Conversation) Max() int { return c.max }
