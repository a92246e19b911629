// Package scoring computes the relevance score of a lead: four bounded
// sub-scores combined by configured weights, adjusted by bonus multipliers,
// and classified into priority tiers. Every sub-score is a deterministic
// pure function of (lead, config), which makes memoization safe and unit
// testing trivial.
package scoring

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/leadfilter/internal/config"
	"github.com/jonesrussell/leadfilter/internal/domain"
	"github.com/jonesrussell/leadfilter/internal/textnorm"
)

// Sub-score bounds.
const (
	minSubScore = 0
	maxSubScore = 100
)

// Company relevance points per unique matched keyword.
const (
	primaryPositivePoints   = 25
	secondaryPositivePoints = 10
	primaryNegativePoints   = 30
	secondaryNegativePoints = 10
)

// Geographic base scores per country bucket.
const (
	geoTargetCountryScore = 100
	geoTargetRegionScore  = 60
	geoOtherCountryScore  = 20
	geoUnknownScore       = 10
)

// Engagement scores per contact-context bucket.
const (
	engagementDirectScore   = 90
	engagementGreetingScore = 60
	engagementDefaultScore  = 50
	engagementAdminScore    = 10
)

// structuredLocalPart matches firstname.lastname style local parts.
var structuredLocalPart = regexp.MustCompile(`^[a-z]+[._-][a-z]+$`)

var automatedSenderTerms = []string{"noreply", "no-reply", "donotreply", "do-not-reply"}

var (
	directContactTerms = []string{"contact", "info", "sales", "product", "service", "vendite", "vertrieb"}
	greetingTerms      = []string{"hello", "hi", "hey", "ciao", "hallo", "office", "mail", "post"}
	adminTerms         = []string{"admin", "system", "root", "daemon", "mailer", "hostmaster"}
)

// RelevanceScorer computes the four sub-scores. It precompiles the keyword
// automatons from the configuration once; given a fixed configuration every
// method is pure.
type RelevanceScorer struct {
	cfg               *config.FilterConfig
	primaryPositive   *keywordMatcher
	primaryNegative   *keywordMatcher
	secondaryPositive *keywordMatcher
	secondaryNegative *keywordMatcher
	freeProviders     []string
	targetCountry     string
	targetRegions     map[string]struct{}
	multipliers       map[string]float64
}

// NewRelevanceScorer builds a scorer for one configuration.
func NewRelevanceScorer(cfg *config.FilterConfig) *RelevanceScorer {
	s := &RelevanceScorer{
		cfg:               cfg,
		primaryPositive:   newKeywordMatcher(cfg.CompanyKeywords.Primary.Positive),
		primaryNegative:   newKeywordMatcher(cfg.CompanyKeywords.Primary.Negative),
		secondaryPositive: newKeywordMatcher(cfg.CompanyKeywords.Secondary.Positive),
		secondaryNegative: newKeywordMatcher(cfg.CompanyKeywords.Secondary.Negative),
		freeProviders:     textnorm.FoldAll(cfg.EmailQuality.FreeProviders),
		targetCountry:     textnorm.Fold(cfg.Target.Country),
		targetRegions:     make(map[string]struct{}, len(cfg.GeographicRules.TargetRegions)),
		multipliers:       make(map[string]float64, len(cfg.GeographicRules.Multipliers)),
	}
	for _, r := range cfg.GeographicRules.TargetRegions {
		s.targetRegions[textnorm.Fold(r)] = struct{}{}
	}
	for k, v := range cfg.GeographicRules.Multipliers {
		s.multipliers[textnorm.Fold(k)] = v
	}
	return s
}

// EmailQuality scores the structural quality of the address itself:
// corporate domains up, free providers and automated senders down.
func (s *RelevanceScorer) EmailQuality(lead *domain.Lead) float64 {
	eq := s.cfg.EmailQuality
	score := eq.BaseScore

	address := textnorm.Fold(lead.Address)
	local := lead.LocalPart()
	addrDomain := lead.Domain()

	if malformedAddress(address, local, addrDomain) {
		score -= eq.MalformedPenalty
	}
	if addrDomain != "" {
		if s.isFreeProvider(addrDomain) {
			score -= eq.FreeProviderPenalty
		} else {
			score += eq.CorporateDomainBonus
		}
	}
	if structuredLocalPart.MatchString(local) {
		score += eq.StructuredLocalPartBonus
	}
	if containsAny(local, automatedSenderTerms) {
		score -= eq.AutomatedSenderPenalty
	}
	return clamp(score)
}

// CompanyRelevance scores textual relevance of company, description, and
// domain against the configured keyword tiers. Positive terms add, negative
// terms subtract, primary terms weigh more than secondary ones.
func (s *RelevanceScorer) CompanyRelevance(lead *domain.Lead) float64 {
	text := textnorm.Words(textnorm.Fold(
		lead.Company + " " + lead.Description + " " + lead.Domain()))
	if text == "" {
		return minSubScore
	}

	score := 0.0
	score += float64(len(s.primaryPositive.uniqueMatches(text))) * primaryPositivePoints
	score += float64(len(s.secondaryPositive.uniqueMatches(text))) * secondaryPositivePoints
	score -= float64(len(s.primaryNegative.uniqueMatches(text))) * primaryNegativePoints
	score -= float64(len(s.secondaryNegative.uniqueMatches(text))) * secondaryNegativePoints
	return clamp(score)
}

// GeographicPriority buckets the lead's country (target country highest,
// target regions medium, everything else low) and applies the configured
// per-country multiplier.
func (s *RelevanceScorer) GeographicPriority(lead *domain.Lead) float64 {
	country := textnorm.Fold(lead.Country)

	var base float64
	switch {
	case country == "":
		base = geoUnknownScore
	case country == s.targetCountry && s.targetCountry != "":
		base = geoTargetCountryScore
	default:
		if _, ok := s.targetRegions[country]; ok {
			base = geoTargetRegionScore
		} else {
			base = geoOtherCountryScore
		}
	}

	multiplier := 1.0
	if m, ok := s.multipliers[country]; ok && m > 0 {
		multiplier = m
	}
	return clamp(base * multiplier)
}

// Engagement scores the contact signal of the local part or source context:
// direct business contacts high, greetings medium, administrative and
// automated senders low.
func (s *RelevanceScorer) Engagement(lead *domain.Lead) float64 {
	context := textnorm.Fold(lead.SourceContext)
	if context == "" {
		context = lead.LocalPart()
	}
	if context == "" {
		return engagementAdminScore
	}

	switch {
	case containsAny(context, automatedSenderTerms), containsAny(context, adminTerms):
		return engagementAdminScore
	case containsAny(context, directContactTerms):
		return engagementDirectScore
	case containsAny(context, greetingTerms):
		return engagementGreetingScore
	default:
		return engagementDefaultScore
	}
}

func (s *RelevanceScorer) isFreeProvider(addrDomain string) bool {
	for _, p := range s.freeProviders {
		if strings.Contains(addrDomain, p) {
			return true
		}
	}
	return false
}

// malformedAddress reports structural defects: a missing or misplaced "@",
// an empty local part, or a domain without a dot.
func malformedAddress(address, local, addrDomain string) bool {
	if address == "" || local == "" || addrDomain == "" {
		return true
	}
	if strings.Count(address, "@") != 1 {
		return true
	}
	return !strings.Contains(addrDomain, ".")
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < minSubScore {
		return minSubScore
	}
	if v > maxSubScore {
		return maxSubScore
	}
	return v
}
