package scoring

import (
	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/leadfilter/internal/textnorm"
)

// keywordMatcher wraps an Aho-Corasick automaton over one keyword tier.
// All configured keywords are matched in a single pass through the lead
// text instead of one Contains scan per keyword.
type keywordMatcher struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

func newKeywordMatcher(terms []string) *keywordMatcher {
	folded := make([]string, 0, len(terms))
	for _, t := range textnorm.FoldAll(terms) {
		if w := textnorm.Words(t); w != "" {
			folded = append(folded, w)
		}
	}
	m := &keywordMatcher{keywords: folded}
	if len(folded) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(folded)
	}
	return m
}

// uniqueMatches returns each distinct keyword found in text, which must
// already be folded and word-normalized.
func (m *keywordMatcher) uniqueMatches(text string) []string {
	if m.matcher == nil || text == "" {
		return nil
	}
	hits := m.matcher.Match([]byte(text))
	if len(hits) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(hits))
	matched := make([]string, 0, len(hits))
	for _, idx := range hits {
		if idx < 0 || idx >= len(m.keywords) || seen[idx] {
			continue
		}
		seen[idx] = true
		matched = append(matched, m.keywords[idx])
	}
	return matched
}
