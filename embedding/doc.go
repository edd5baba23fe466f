// Package embedding defines the provider-agnostic Embedder abstraction and
// concrete implementations used to turn text into fixed-length vectors.
//
// Providers implement the Embedder interface so the similarity index stays
// decoupled from vendor SDKs. A deterministic Mock implementation is provided
// for tests and offline development.
package embedding
