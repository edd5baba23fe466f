// Package memory implements the bounded conversation log. A Conversation is
// a simple FIFO with a maximum retained count (oldest evicted first), used
// both for replay by the caller and as context for the generative fallback.
// It is not a cache: there are no reuse semantics, only recency.
package memory
