package memory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdesk/askdesk/core"
)

func TestAppendAssignsTimestamp(t *testing.T) {
	c := NewConversation(10)
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	stored := c.Append(core.NewUserMessage("bonjour"))
	assert.Equal(t, fixed, stored.Timestamp)

	msgs := c.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, fixed, msgs[0].Timestamp)
}

func TestBoundedEviction(t *testing.T) {
	c := NewConversation(3)
	for i := 0; i < 10; i++ {
		c.AppendUser(fmt.Sprintf("message %d", i))
		assert.LessOrEqual(t, c.Len(), 3, "never exceeds the configured maximum")
	}

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "message 7", msgs[0].Content)
	assert.Equal(t, "message 8", msgs[1].Content)
	assert.Equal(t, "message 9", msgs[2].Content)
}

func TestRecentWindowChronological(t *testing.T) {
	c := NewConversation(10)
	for i := 0; i < 8; i++ {
		if i%2 == 0 {
			c.AppendUser(fmt.Sprintf("user %d", i))
		} else {
			c.AppendAssistant(fmt.Sprintf("assistant %d", i), nil)
		}
	}

	window := c.RecentWindow(5)
	require.Len(t, window, 5)
	assert.Equal(t, "assistant 3", window[0].Content)
	assert.Equal(t, "assistant 7", window[4].Content)

	// Window larger than the log returns everything.
	assert.Len(t, c.RecentWindow(100), 8)
	assert.Nil(t, c.RecentWindow(0))
}

func TestAppendAssistantMetadata(t *testing.T) {
	c := NewConversation(5)
	md := map[string]any{"kind": "faq_match", "confidence": 0.92}
	stored := c.AppendAssistant("réponse", md)

	assert.Equal(t, core.RoleAssistant, stored.Role)
	assert.Equal(t, md, stored.Metadata)
}

func TestDefaultBound(t *testing.T) {
	c := NewConversation(0)
	assert.Equal(t, DefaultMaxMessages, c.Max())
}

func TestMessagesIsDefensiveCopy(t *testing.T) {
	c := NewConversation(5)
	c.AppendUser("original")

	msgs := c.Messages()
	msgs[0].Content = "mutated"
	assert.Equal(t, "original", c.Messages()[0].Content)
}
