package order

import (
	"regexp"
	"strings"
)

// Order references are a fixed domain convention: the literal prefix "CMD"
// followed by one or more digits, matched case-insensitively anywhere in the
// text. Alternate identifier formats are a conscious extension point; change
// the grammar here, not at call sites.
var referencePattern = regexp.MustCompile(`(?i)CMD\d+`)

// DetectReference scans text for an order reference. The first occurrence
// wins when several appear. The returned identifier is normalized to
// uppercase, ready for a ledger lookup. Pure and stateless.
func DetectReference(text string) (string, bool) {
	match := referencePattern.FindString(text)
	if match == "" {
		return "", false
	}
	return strings.ToUpper(match), true
}
