package krdict

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

const (
	proverbHintMin = 5
	proverbHintMax = 200
	generalHintMin = 1
	generalHintMax = 160
)

// ExtractHint picks a human-readable hint from the nested sense structure.
// Proverb entries first try every sense's definition (falling back to
// definition_original) within [5,200] and return it with the proverb label.
// Otherwise, or when that finds nothing, the first definition_original
// within [1,160] that is not purely numeric and holds no angle brackets wins.
// Returns "" when nothing qualifies; callers substitute the placeholder.
func ExtractHint(posInfo []rawPOSInfo, unit string) string {
	if len(posInfo) == 0 {
		return ""
	}

	if unit == domain.UnitProverb {
		if hint, ok := firstSense(posInfo, proverbDefinition, acceptProverbHint); ok {
			return domain.ProverbHintPrefix + hint
		}
	}

	hint, _ := firstSense(posInfo, originalDefinition, acceptGeneralHint)
	return hint
}

// firstSense walks patterns and senses in order and returns the first
// cleaned definition accepted by accept.
func firstSense(posInfo []rawPOSInfo, pick func(rawSense) string, accept func(string) bool) (string, bool) {
	for _, pos := range posInfo {
		for _, pattern := range pos.CommPatternInfo {
			for _, sense := range pattern.SenseInfo {
				text := pick(sense)
				if text == "" {
					continue
				}
				text = CleanDefinition(text)
				if accept(text) {
					return text, true
				}
			}
		}
	}
	return "", false
}

func proverbDefinition(s rawSense) string {
	if s.Definition != "" {
		return s.Definition
	}
	return s.DefinitionOriginal
}

func originalDefinition(s rawSense) string {
	return s.DefinitionOriginal
}

func acceptProverbHint(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= proverbHintMin && n <= proverbHintMax
}

func acceptGeneralHint(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < generalHintMin || n > generalHintMax {
		return false
	}
	if allDigitsRe.MatchString(s) {
		return false
	}
	return !strings.ContainsAny(s, "<>")
}
