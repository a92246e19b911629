// Package config defines the declarative filter configuration: the target
// market, keyword lists, geographic priorities, scoring weights, thresholds,
// and hard-exclusion rules. A configuration is loaded once per run,
// validated, optionally merged with overrides, and treated as immutable for
// the duration of the run.
package config

import "time"

// FilterConfig is the root of the declarative ruleset.
type FilterConfig struct {
	Metadata        Metadata        `yaml:"metadata"`
	Target          Target          `yaml:"target"`
	Scoring         Scoring         `yaml:"scoring"`
	CompanyKeywords CompanyKeywords `yaml:"company_keywords"`
	GeographicRules GeographicRules `yaml:"geographic_rules"`
	Exclusions      Exclusions      `yaml:"exclusions"`
	EmailQuality    EmailQuality    `yaml:"email_quality"`
}

// Metadata identifies a configuration.
type Metadata struct {
	Name    string    `yaml:"name"`
	Version string    `yaml:"version"`
	Created time.Time `yaml:"created,omitempty"`
	Updated time.Time `yaml:"updated,omitempty"`
}

// Target describes the market the filter qualifies leads for.
type Target struct {
	Country   string   `env:"LEADFILTER_TARGET_COUNTRY"  yaml:"country"`
	Industry  string   `env:"LEADFILTER_TARGET_INDUSTRY" yaml:"industry"`
	Languages []string `yaml:"languages"`
}

// Scoring holds the weights, classification thresholds, and bonus factors.
type Scoring struct {
	Weights    Weights    `yaml:"weights"`
	Thresholds Thresholds `yaml:"thresholds"`
	Bonuses    Bonuses    `yaml:"bonuses"`
}

// Weights are the relative importance of the four sub-scores.
// They must each lie in [0,1] and sum to 1.0 within 0.01.
type Weights struct {
	EmailQuality       float64 `yaml:"email_quality"`
	CompanyRelevance   float64 `yaml:"company_relevance"`
	GeographicPriority float64 `yaml:"geographic_priority"`
	Engagement         float64 `yaml:"engagement"`
}

// Sum returns the total of the four weights.
func (w Weights) Sum() float64 {
	return w.EmailQuality + w.CompanyRelevance + w.GeographicPriority + w.Engagement
}

// Thresholds split the score range into priority tiers.
// Must satisfy High > Medium > Low.
type Thresholds struct {
	High   float64 `yaml:"high"`
	Medium float64 `yaml:"medium"`
	Low    float64 `yaml:"low"`
}

// Bonuses are multiplicative adjustments applied to the combined weighted
// score. A factor of 1.0 disables the bonus.
type Bonuses struct {
	OEM       float64 `yaml:"oem"`
	Geography float64 `yaml:"geography"`
	Domain    float64 `yaml:"domain"`
}

// CompanyKeywords holds the textual relevance terms in two tiers.
// Primary terms carry more scoring weight than secondary terms.
type CompanyKeywords struct {
	Primary   KeywordSet `yaml:"primary"`
	Secondary KeywordSet `yaml:"secondary"`
}

// KeywordSet pairs positive (additive) with negative (subtractive) terms.
type KeywordSet struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// GeographicRules configure country prioritization.
type GeographicRules struct {
	// TargetRegions score above unrelated countries but below the target
	// country itself.
	TargetRegions []string `yaml:"target_regions"`
	// Multipliers scale the geographic base score per country or region.
	// Unlisted countries default to 1.0.
	Multipliers map[string]float64 `yaml:"multipliers"`
}

// Exclusions configure the hard-exclusion engine.
type Exclusions struct {
	PersonalDomains []string `yaml:"personal_domains"`
	RolePrefixes    []string `yaml:"role_prefixes"`
	// ExcludedIndustries maps a vertical name (closed set, see
	// domain.KnownVerticals) to keyword terms. An empty term list enables
	// the vertical with its built-in default terms.
	ExcludedIndustries map[string][]string `yaml:"excluded_industries"`
	ExcludedCountries  []string            `yaml:"excluded_countries"`
	SuspiciousPatterns []string            `yaml:"suspicious_patterns"`
}

// EmailQuality holds the email-structure scoring parameters.
type EmailQuality struct {
	BaseScore                float64  `yaml:"base_score"`
	CorporateDomainBonus     float64  `yaml:"corporate_domain_bonus"`
	FreeProviderPenalty      float64  `yaml:"free_provider_penalty"`
	StructuredLocalPartBonus float64  `yaml:"structured_local_part_bonus"`
	AutomatedSenderPenalty   float64  `yaml:"automated_sender_penalty"`
	MalformedPenalty         float64  `yaml:"malformed_penalty"`
	FreeProviders            []string `yaml:"free_providers"`
}

// Clone returns an independent structural copy: no slice or map storage is
// shared with the receiver.
func (c *FilterConfig) Clone() *FilterConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.Target.Languages = copyStrings(c.Target.Languages)
	out.CompanyKeywords.Primary = c.CompanyKeywords.Primary.clone()
	out.CompanyKeywords.Secondary = c.CompanyKeywords.Secondary.clone()
	out.GeographicRules.TargetRegions = copyStrings(c.GeographicRules.TargetRegions)
	out.GeographicRules.Multipliers = copyFloatMap(c.GeographicRules.Multipliers)
	out.Exclusions.PersonalDomains = copyStrings(c.Exclusions.PersonalDomains)
	out.Exclusions.RolePrefixes = copyStrings(c.Exclusions.RolePrefixes)
	out.Exclusions.ExcludedIndustries = copyStringListMap(c.Exclusions.ExcludedIndustries)
	out.Exclusions.ExcludedCountries = copyStrings(c.Exclusions.ExcludedCountries)
	out.Exclusions.SuspiciousPatterns = copyStrings(c.Exclusions.SuspiciousPatterns)
	out.EmailQuality.FreeProviders = copyStrings(c.EmailQuality.FreeProviders)
	return &out
}

func (k KeywordSet) clone() KeywordSet {
	return KeywordSet{
		Positive: copyStrings(k.Positive),
		Negative: copyStrings(k.Negative),
	}
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyFloatMap(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyStringListMap(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = copyStrings(v)
	}
	return out
}
