package memory

import "github.com/askdesk/askdesk/core"

// LastN returns the trailing n messages of an already-ordered history slice,
// preserving chronological order. Used by callers that hold a detached
// history copy rather than a live Conversation.
func LastN(history []core.Message, n int) []core.Message {
	if n <= 0 || len(history) == 0 {
		return nil
	}
	if n > len(history) {
		n = len(history)
	}
	return history[len(history)-n:]
}
