package krdict

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	longDigitsRe = regexp.MustCompile(`[0-9]{5,}`)
	quotedSpanRe = regexp.MustCompile(`'[^']*'`)
	bracketRe    = regexp.MustCompile(`[_\[\]「」『』()]`)
	whitespaceRe = regexp.MustCompile(`[\s\x0B\p{Z}\x{FEFF}]+`)
	allDigitsRe  = regexp.MustCompile(`^[0-9]+$`)
)

// CleanDefinition strips markup and noise from a sense definition:
// HTML-like tags, runs of 5+ digits, single-quoted spans; brackets become
// spaces; whitespace is collapsed and trimmed. The steps repeat until the
// text stops changing, so cleaning cleaned text is a no-op. Every pass
// after the first either shrinks the text or leaves it unchanged.
func CleanDefinition(s string) string {
	for {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func cleanOnce(s string) string {
	if s == "" {
		return ""
	}
	s = htmlTagRe.ReplaceAllString(s, "")
	s = longDigitsRe.ReplaceAllString(s, "")
	s = quotedSpanRe.ReplaceAllString(s, "")
	s = bracketRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.Trim(s, " ")
}
