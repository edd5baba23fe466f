// Package core centralizes the domain contracts shared by every AskDesk
// package: conversation messages, the structured response record produced by
// the resolution cascade, and the small helpers used to construct both.
//
// Keeping these types in one leaf package prevents dependency cycles between
// the stores (knowledge, order, memory) and the router that composes them.
package core
