package config

import "time"

// Merge deep-merges override into base and returns a new configuration.
// Neither input is mutated. Scalar fields win when the override value is
// set (non-zero); slices replace the base slice wholesale, they are never
// concatenated; maps merge key-wise with override entries winning.
//
// The merge is written out field by field on purpose: the
// replace-not-concatenate rule for arrays stays enforceable and testable,
// which a generic reflection merge would obscure.
func Merge(base, override *FilterConfig) *FilterConfig {
	if base == nil {
		return override.Clone()
	}
	out := base.Clone()
	if override == nil {
		return out
	}

	mergeMetadata(&out.Metadata, &override.Metadata)
	mergeTarget(&out.Target, &override.Target)
	mergeScoring(&out.Scoring, &override.Scoring)
	mergeKeywords(&out.CompanyKeywords, &override.CompanyKeywords)
	mergeGeographic(&out.GeographicRules, &override.GeographicRules)
	mergeExclusions(&out.Exclusions, &override.Exclusions)
	mergeEmailQuality(&out.EmailQuality, &override.EmailQuality)
	return out
}

func mergeMetadata(dst, src *Metadata) {
	setString(&dst.Name, src.Name)
	setString(&dst.Version, src.Version)
	setTime(&dst.Created, src.Created)
	setTime(&dst.Updated, src.Updated)
}

func mergeTarget(dst, src *Target) {
	setString(&dst.Country, src.Country)
	setString(&dst.Industry, src.Industry)
	replaceSlice(&dst.Languages, src.Languages)
}

func mergeScoring(dst, src *Scoring) {
	setFloat(&dst.Weights.EmailQuality, src.Weights.EmailQuality)
	setFloat(&dst.Weights.CompanyRelevance, src.Weights.CompanyRelevance)
	setFloat(&dst.Weights.GeographicPriority, src.Weights.GeographicPriority)
	setFloat(&dst.Weights.Engagement, src.Weights.Engagement)
	setFloat(&dst.Thresholds.High, src.Thresholds.High)
	setFloat(&dst.Thresholds.Medium, src.Thresholds.Medium)
	setFloat(&dst.Thresholds.Low, src.Thresholds.Low)
	setFloat(&dst.Bonuses.OEM, src.Bonuses.OEM)
	setFloat(&dst.Bonuses.Geography, src.Bonuses.Geography)
	setFloat(&dst.Bonuses.Domain, src.Bonuses.Domain)
}

func mergeKeywords(dst, src *CompanyKeywords) {
	replaceSlice(&dst.Primary.Positive, src.Primary.Positive)
	replaceSlice(&dst.Primary.Negative, src.Primary.Negative)
	replaceSlice(&dst.Secondary.Positive, src.Secondary.Positive)
	replaceSlice(&dst.Secondary.Negative, src.Secondary.Negative)
}

func mergeGeographic(dst, src *GeographicRules) {
	replaceSlice(&dst.TargetRegions, src.TargetRegions)
	if len(src.Multipliers) > 0 {
		if dst.Multipliers == nil {
			dst.Multipliers = make(map[string]float64, len(src.Multipliers))
		}
		for k, v := range src.Multipliers {
			dst.Multipliers[k] = v
		}
	}
}

func mergeExclusions(dst, src *Exclusions) {
	replaceSlice(&dst.PersonalDomains, src.PersonalDomains)
	replaceSlice(&dst.RolePrefixes, src.RolePrefixes)
	replaceSlice(&dst.ExcludedCountries, src.ExcludedCountries)
	replaceSlice(&dst.SuspiciousPatterns, src.SuspiciousPatterns)
	if len(src.ExcludedIndustries) > 0 {
		if dst.ExcludedIndustries == nil {
			dst.ExcludedIndustries = make(map[string][]string, len(src.ExcludedIndustries))
		}
		for k, v := range src.ExcludedIndustries {
			dst.ExcludedIndustries[k] = copyStrings(v)
		}
	}
}

func mergeEmailQuality(dst, src *EmailQuality) {
	setFloat(&dst.BaseScore, src.BaseScore)
	setFloat(&dst.CorporateDomainBonus, src.CorporateDomainBonus)
	setFloat(&dst.FreeProviderPenalty, src.FreeProviderPenalty)
	setFloat(&dst.StructuredLocalPartBonus, src.StructuredLocalPartBonus)
	setFloat(&dst.AutomatedSenderPenalty, src.AutomatedSenderPenalty)
	setFloat(&dst.MalformedPenalty, src.MalformedPenalty)
	replaceSlice(&dst.FreeProviders, src.FreeProviders)
}

func setString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func setFloat(dst *float64, src float64) {
	if src != 0 {
		*dst = src
	}
}

func setTime(dst *time.Time, src time.Time) {
	if !src.IsZero() {
		*dst = src
	}
}

func replaceSlice(dst *[]string, src []string) {
	if src != nil {
		*dst = copyStrings(src)
	}
}
