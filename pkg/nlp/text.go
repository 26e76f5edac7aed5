package nlp

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)
var multiSpace = regexp.MustCompile(`\s+`)

// Normalize lower-cases a string and replaces every non-word run with a
// single space. Words are a-z and 0-9, which is enough for keyword matching.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase reports whether a normalized phrase occurs in normalized
// text as whole words. "hi" is found in "hi there" but not in "historic".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	// pad with spaces to enforce word boundaries
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// ContainsAnyWord reports whether any of the phrases occurs in text as
// whole words. Both text and phrases are normalized before matching.
func ContainsAnyWord(text string, phrases ...string) bool {
	norm := Normalize(text)
	for _, p := range phrases {
		if ContainsPhrase(norm, Normalize(p)) {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of the needles is a plain substring of
// the lower-cased text. No word boundaries: "pay" matches "payday".
func ContainsAny(text string, needles ...string) bool {
	lower := strings.ToLower(text)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
