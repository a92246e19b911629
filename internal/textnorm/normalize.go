// Package textnorm normalizes free text for keyword matching.
// All comparisons in the exclusion engine and the relevance scorer run on
// folded text so that "Società" matches "societa" and case never matters.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lowercases s and strips combining diacritical marks.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Fall back to the lowercased input; matching stays case-insensitive.
		return s
	}
	return out
}

// FoldAll folds every element of in, dropping empties.
func FoldAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if folded := Fold(s); folded != "" {
			out = append(out, folded)
		}
	}
	return out
}

// Words replaces every non-alphanumeric rune with a space and collapses
// runs of spaces, preserving word boundaries for substring matching over
// concatenated fields.
func Words(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
