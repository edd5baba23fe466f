// Package order holds the order ledger consulted when an utterance carries an
// order reference, plus the pure detector that recognizes such references.
// The ledger is seeded once at startup and is read-only afterwards; mutation
// would come from an external order-management system, out of scope here.
package order
