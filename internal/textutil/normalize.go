package textutil

import (
	"strings"
	"unicode"
)

// titleStopwords are leading articles (English and Spanish) dropped during
// normalization so "The Matrix" and "Matrix" compare as the same title.
var titleStopwords = map[string]struct{}{
	"el":  {},
	"la":  {},
	"los": {},
	"las": {},
	"un":  {},
	"una": {},
	"the": {},
	"a":   {},
	"an":  {},
}

// NormalizeTitle canonicalizes a movie title for comparison. The result is
// lowercase with stopword tokens removed and every rune that is not a letter,
// digit, or space stripped. An empty input yields an empty output.
func NormalizeTitle(title string) string {
	words := strings.Fields(strings.ToLower(title))
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if _, skip := titleStopwords[word]; skip {
			continue
		}
		kept = append(kept, word)
	}

	var b strings.Builder
	for _, r := range strings.Join(kept, " ") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
