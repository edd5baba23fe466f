package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessage(t *testing.T) {
	m := NewUserMessage("bonjour")
	assert.Equal(t, RoleUser, m.Role)
	assert.Equal(t, "bonjour", m.Content)
	assert.NotEmpty(t, m.ID)
	assert.True(t, m.Timestamp.IsZero(), "timestamp is assigned at append time")

	a := NewAssistantMessage("salut")
	assert.Equal(t, RoleAssistant, a.Role)
	assert.NotEqual(t, m.ID, a.ID)
}

func TestMessageWithMetadata(t *testing.T) {
	md := map[string]any{"kind": string(KindFAQMatch), "confidence": 0.9}
	m := NewAssistantMessage("réponse").WithMetadata(md)
	assert.Equal(t, md, m.Metadata)
}

func TestResponseConfidence(t *testing.T) {
	r := Response{Kind: KindUnresolved}
	assert.Nil(t, r.Confidence)
	assert.Zero(t, r.ConfidenceOrZero())

	r = Response{Kind: KindOrderStatus, Confidence: Float(1.0)}
	assert.Equal(t, 1.0, r.ConfidenceOrZero())
}
