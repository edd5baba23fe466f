// Package index implements the in-memory similarity index over knowledge
// base questions. The index is built once at startup by embedding every
// question and is read-only afterwards, so it is safe to share across
// concurrent requests without locking.
package index
