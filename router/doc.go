// Package router implements the resolution cascade that turns a user
// utterance into a structured response. Four tiers are evaluated in order,
// short-circuiting at the first applicable one: order-reference lookup,
// semantic FAQ match, generative fallback, and the unresolved default.
//
// The router is stateless: the knowledge base, similarity index and order
// ledger are immutable snapshots passed in at construction, which keeps it
// trivially testable with fixture data and safe to share across sessions.
package router
