// Package model defines the provider-agnostic abstraction for the generative
// fallback: a text-completion service fed a fixed persona plus a bounded
// conversation window.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate lightweight mocking for tests (MockCompleter)
//
// Providers (e.g. OpenAI, Anthropic) implement the Completer interface from
// this package in sub-packages so the router remains decoupled from vendor
// SDKs.
package model
