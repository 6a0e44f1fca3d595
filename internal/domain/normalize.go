package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeInput prepares user-supplied text (query strings, manual words):
//   - composes decomposed jamo sequences into precomposed syllables (NFC)
//   - trims leading/trailing whitespace
//
// Archive text is not normalized; it is taken as stored.
func NormalizeInput(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
