package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	proverbMinLen = 3
	proverbMaxLen = 15
	wordMinLen    = 2
	wordMaxLen    = 10
)

// IsGoodWord decides whether an archive word may become a quiz candidate.
// hint is the extractor's result before any placeholder substitution.
// Checks run in order: structural rejects, unit-specific bounds, type exclusion.
func IsGoodWord(word, hint, unit, wordType string) bool {
	if word == "" {
		return false
	}
	if strings.ContainsAny(word, "_^-") {
		return false
	}

	if unit == UnitProverb {
		n := utf8.RuneCountInString(word)
		if n < proverbMinLen || n > proverbMaxLen {
			return false
		}
		return hint != ""
	}

	n := utf8.RuneCountInString(strings.TrimSpace(word))
	if n < wordMinLen || n > wordMaxLen {
		return false
	}
	return wordType != TypeHybrid && wordType != TypeLoanword
}
