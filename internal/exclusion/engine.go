// Package exclusion implements categorical disqualification of leads ahead
// of scoring. A single matching category is sufficient evidence of
// irrelevance: the engine stops at the first match and never consults the
// scorer.
package exclusion

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonesrussell/leadfilter/internal/config"
	"github.com/jonesrussell/leadfilter/internal/domain"
	"github.com/jonesrussell/leadfilter/internal/logger"
	"github.com/jonesrussell/leadfilter/internal/textnorm"
)

type vertical struct {
	name  domain.Vertical
	terms []string
}

// Engine applies the hard-exclusion rules. All term lists are folded and
// every suspicious pattern compiled once at construction, so Classify does
// no per-lead parsing.
type Engine struct {
	personalDomains   []string
	rolePrefixes      []string
	excludedCountries map[string]struct{}
	suspicious        []*regexp.Regexp
	verticals         []vertical
	log               logger.Logger
}

// NewEngine builds an engine from a validated configuration.
// Suspicious patterns that fail to compile produce an error; Validate
// reports them ahead of time.
func NewEngine(cfg *config.FilterConfig, log logger.Logger) (*Engine, error) {
	if log == nil {
		log = logger.NewNop()
	}

	e := &Engine{
		personalDomains:   textnorm.FoldAll(cfg.Exclusions.PersonalDomains),
		rolePrefixes:      textnorm.FoldAll(cfg.Exclusions.RolePrefixes),
		excludedCountries: make(map[string]struct{}, len(cfg.Exclusions.ExcludedCountries)),
		log:               log,
	}
	for _, c := range cfg.Exclusions.ExcludedCountries {
		e.excludedCountries[textnorm.Fold(c)] = struct{}{}
	}

	for _, pattern := range cfg.Exclusions.SuspiciousPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile suspicious pattern %q: %w", pattern, err)
		}
		e.suspicious = append(e.suspicious, re)
	}

	// Deterministic vertical order keeps matched terms stable across runs.
	names := make([]string, 0, len(cfg.Exclusions.ExcludedIndustries))
	for name := range cfg.Exclusions.ExcludedIndustries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v := domain.Vertical(name)
		terms := termsFor(v, cfg.Exclusions.ExcludedIndustries[name], cfg.Target.Languages)
		folded := make([]string, 0, len(terms))
		for _, t := range textnorm.FoldAll(terms) {
			// Terms pass through the same word normalization as lead text so
			// hyphenated terms like "non-profit" still match.
			if w := textnorm.Words(t); w != "" {
				folded = append(folded, w)
			}
		}
		e.verticals = append(e.verticals, vertical{name: v, terms: folded})
	}

	log.Debug("exclusion engine initialized",
		logger.Int("personal_domains", len(e.personalDomains)),
		logger.Int("role_prefixes", len(e.rolePrefixes)),
		logger.Int("suspicious_patterns", len(e.suspicious)),
		logger.Int("verticals", len(e.verticals)),
	)
	return e, nil
}

// Classify runs the categorical checks in fixed order and stops at the
// first match: personal-provider domains, role prefixes, excluded
// countries, suspicious patterns, excluded verticals. Empty fields never
// match and never crash.
func (e *Engine) Classify(lead *domain.Lead) domain.ExclusionVerdict {
	address := textnorm.Fold(lead.Address)
	addrDomain := lead.Domain()

	if term, ok := e.matchPersonalDomain(addrDomain); ok {
		return excluded(domain.CategoryPersonalProvider, domain.SeverityMedium, term)
	}
	if term, ok := e.matchRolePrefix(address, lead.LocalPart()); ok {
		return excluded(domain.CategoryRolePrefix, domain.SeverityMedium, term)
	}
	if country := textnorm.Fold(lead.Country); country != "" {
		if _, ok := e.excludedCountries[country]; ok {
			return excluded(domain.CategoryExcludedGeography, domain.SeverityMedium, country)
		}
	}
	if address != "" {
		for _, re := range e.suspicious {
			if re.MatchString(address) {
				return excluded(domain.CategorySuspiciousPattern, domain.SeverityHigh, re.String())
			}
		}
	}
	if term, v, ok := e.matchVertical(lead); ok {
		verdict := excluded(domain.CategoryExcludedVertical, domain.SeverityHigh, term)
		e.log.Debug("lead excluded by vertical",
			logger.String("address", lead.Address),
			logger.String("vertical", string(v)),
			logger.String("term", term),
		)
		return verdict
	}

	return domain.ExclusionVerdict{Excluded: false}
}

func (e *Engine) matchPersonalDomain(addrDomain string) (string, bool) {
	if addrDomain == "" {
		return "", false
	}
	for _, d := range e.personalDomains {
		if strings.Contains(addrDomain, d) {
			return d, true
		}
	}
	return "", false
}

func (e *Engine) matchRolePrefix(address, localPart string) (string, bool) {
	if address == "" {
		return "", false
	}
	for _, prefix := range e.rolePrefixes {
		if strings.HasSuffix(prefix, "@") {
			if strings.HasPrefix(address, prefix) {
				return prefix, true
			}
			continue
		}
		if localPart == prefix {
			return prefix, true
		}
	}
	return "", false
}

func (e *Engine) matchVertical(lead *domain.Lead) (string, domain.Vertical, bool) {
	text := textnorm.Fold(strings.TrimSpace(
		lead.Company + " " + lead.Description + " " + lead.Domain()))
	if text == "" {
		return "", "", false
	}
	text = textnorm.Words(text)
	for _, v := range e.verticals {
		for _, term := range v.terms {
			if strings.Contains(text, term) {
				return term, v.name, true
			}
		}
	}
	return "", "", false
}

func excluded(cat domain.ExclusionCategory, sev domain.Severity, term string) domain.ExclusionVerdict {
	return domain.ExclusionVerdict{
		Excluded:    true,
		Reasons:     []domain.ExclusionReason{{Category: cat, Severity: sev}},
		MatchedTerm: term,
	}
}
