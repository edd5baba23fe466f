package session

import (
	"sync"

	"github.com/askdesk/askdesk/memory"
)

// InMemoryStore is a volatile store of per-session conversations in a
// process local map. It is safe for concurrent access. Conversations are
// created lazily on first access and are returned by reference: the
// Conversation type carries its own locking.
type InMemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*memory.Conversation
	maxMessages   int
}

// NewInMemoryStore constructs an empty in-memory session store whose
// conversations retain at most maxMessages entries each.
func NewInMemoryStore(maxMessages int) *InMemoryStore {
	return &InMemoryStore{
		conversations: make(map[string]*memory.Conversation),
		maxMessages:   maxMessages,
	}
}

// Get returns the conversation for sessionID, creating it lazily.
func (s *InMemoryStore) Get(sessionID string) *memory.Conversation {
	s.mu.RLock()
	conv, ok := s.conversations[sessionID]
	s.mu.RUnlock()
	if ok {
		return conv
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if conv, ok := s.conversations[sessionID]; ok {
		return conv
	}
	conv = memory.NewConversation(s.maxMessages)
	s.conversations[sessionID] = conv
	return conv
}

// Reset discards the conversation for sessionID; the next Get starts fresh.
func (s *InMemoryStore) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, sessionID)
}

// Len returns the number of active sessions.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}
