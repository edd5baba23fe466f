// Package session maps session identifiers to their conversation memory.
// Each session owns an independent memory.Conversation; the store guarantees
// that concurrent sessions never share one. The store itself is volatile:
// conversation state does not survive a process restart.
package session
