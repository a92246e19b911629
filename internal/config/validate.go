package config

import (
	"math"
	"regexp"

	"github.com/jonesrussell/leadfilter/internal/domain"
)

const (
	maxNameLength  = 100
	weightSumTotal = 1.0
	// weightSumTolerance is the allowed drift of the weight sum around 1.0.
	weightSumTolerance = 0.01
)

// Validate checks every configuration invariant and collects all violations
// into one ValidationError. Returns nil when the configuration is valid.
//
// Validation deliberately does not short-circuit so that a single call
// surfaces everything the operator has to fix.
func (c *FilterConfig) Validate() *ValidationError {
	verr := &ValidationError{}

	c.validateMetadata(verr)
	c.validateTarget(verr)
	c.validateScoring(verr)
	c.validateKeywords(verr)
	c.validateEmailQuality(verr)
	c.validateExclusions(verr)

	if len(verr.Issues) == 0 {
		return nil
	}
	return verr
}

func (c *FilterConfig) validateMetadata(verr *ValidationError) {
	if c.Metadata.Name == "" {
		verr.add("metadata.name", "must not be empty")
	}
	if len(c.Metadata.Name) > maxNameLength {
		verr.add("metadata.name", "must be at most %d characters, got %d",
			maxNameLength, len(c.Metadata.Name))
	}
	if c.Metadata.Version == "" {
		verr.add("metadata.version", "must be present")
	}
}

func (c *FilterConfig) validateTarget(verr *ValidationError) {
	if c.Target.Country == "" {
		verr.add("target.country", "must be present")
	}
	if c.Target.Industry == "" {
		verr.add("target.industry", "must be present")
	}
	if len(c.Target.Languages) == 0 {
		verr.add("target.languages", "must contain at least one language")
	}
}

func (c *FilterConfig) validateScoring(verr *ValidationError) {
	w := c.Scoring.Weights
	checkWeight := func(field string, v float64) {
		if v < 0 || v > 1 {
			verr.add(field, "must be in [0,1], got %.2f", v)
		}
	}
	checkWeight("scoring.weights.email_quality", w.EmailQuality)
	checkWeight("scoring.weights.company_relevance", w.CompanyRelevance)
	checkWeight("scoring.weights.geographic_priority", w.GeographicPriority)
	checkWeight("scoring.weights.engagement", w.Engagement)

	if sum := w.Sum(); math.Abs(sum-weightSumTotal) > weightSumTolerance {
		verr.add("scoring.weights", "must sum to 1.0 within 0.01, got %.2f", sum)
	}

	t := c.Scoring.Thresholds
	if t.High <= t.Medium {
		verr.add("scoring.thresholds", "high (%.2f) must be greater than medium (%.2f)",
			t.High, t.Medium)
	}
	if t.Medium <= t.Low {
		verr.add("scoring.thresholds", "medium (%.2f) must be greater than low (%.2f)",
			t.Medium, t.Low)
	}

	b := c.Scoring.Bonuses
	checkBonus := func(field string, v float64) {
		if v != 0 && v < 1.0 {
			verr.add(field, "must be at least 1.0, got %.2f", v)
		}
	}
	checkBonus("scoring.bonuses.oem", b.OEM)
	checkBonus("scoring.bonuses.geography", b.Geography)
	checkBonus("scoring.bonuses.domain", b.Domain)
}

func (c *FilterConfig) validateKeywords(verr *ValidationError) {
	total := len(c.CompanyKeywords.Primary.Positive) + len(c.CompanyKeywords.Secondary.Positive)
	if total == 0 {
		verr.add("company_keywords", "must define at least one positive keyword")
	}
}

func (c *FilterConfig) validateEmailQuality(verr *ValidationError) {
	if c.EmailQuality.BaseScore <= 0 {
		verr.add("email_quality.base_score", "must be positive, got %.2f", c.EmailQuality.BaseScore)
	}
}

func (c *FilterConfig) validateExclusions(verr *ValidationError) {
	for name := range c.Exclusions.ExcludedIndustries {
		if !domain.IsKnownVertical(name) {
			verr.add("exclusions.excluded_industries",
				"unknown vertical %q, known verticals: %v", name, domain.KnownVerticals())
		}
	}
	for _, pattern := range c.Exclusions.SuspiciousPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			verr.add("exclusions.suspicious_patterns", "invalid pattern %q: %v", pattern, err)
		}
	}
}
