package scoring

import (
	"github.com/jonesrussell/leadfilter/internal/config"
	"github.com/jonesrussell/leadfilter/internal/domain"
	"github.com/jonesrussell/leadfilter/internal/textnorm"
)

// oemTerms signal a producing company rather than a reseller or agency.
var oemTerms = []string{
	"manufacturer", "manufacturing", "producer", "production", "factory",
	"oem", "produttore", "produzione", "fabbrica", "hersteller", "fertigung", "werk",
}

// BonusCalculator computes the multiplicative adjustments for strong
// qualitative signals. Every factor is >= 1.0 and applies to the combined
// weighted score, never to individual sub-scores.
type BonusCalculator struct {
	oem           float64
	geography     float64
	domainBonus   float64
	targetCountry string
	domainTerms   *keywordMatcher
}

// NewBonusCalculator builds a calculator for one configuration.
// The domain bonus reuses the primary positive keywords: an industry term
// inside the domain itself is a stronger signal than one in the company
// name.
func NewBonusCalculator(cfg *config.FilterConfig) *BonusCalculator {
	return &BonusCalculator{
		oem:           bonusFactor(cfg.Scoring.Bonuses.OEM),
		geography:     bonusFactor(cfg.Scoring.Bonuses.Geography),
		domainBonus:   bonusFactor(cfg.Scoring.Bonuses.Domain),
		targetCountry: textnorm.Fold(cfg.Target.Country),
		domainTerms:   newKeywordMatcher(cfg.CompanyKeywords.Primary.Positive),
	}
}

// Calculate returns the bonus set for one lead. A factor of 1.0 means the
// bonus did not fire.
func (b *BonusCalculator) Calculate(lead *domain.Lead) domain.BonusSet {
	bonuses := domain.BonusSet{OEM: 1.0, Geography: 1.0, Domain: 1.0}

	company := textnorm.Words(textnorm.Fold(lead.Company))
	if company != "" && containsAny(company, oemTerms) {
		bonuses.OEM = b.oem
	}
	if country := textnorm.Fold(lead.Country); country != "" && country == b.targetCountry {
		bonuses.Geography = b.geography
	}
	if addrDomain := textnorm.Words(lead.Domain()); addrDomain != "" {
		if len(b.domainTerms.uniqueMatches(addrDomain)) > 0 {
			bonuses.Domain = b.domainBonus
		}
	}
	return bonuses
}

// bonusFactor treats an unset (zero) config value as a disabled bonus.
func bonusFactor(v float64) float64 {
	if v < 1.0 {
		return 1.0
	}
	return v
}
