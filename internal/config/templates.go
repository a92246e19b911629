package config

import (
	"fmt"
	"sort"

	"github.com/jonesrussell/leadfilter/internal/domain"
)

// Template names.
const (
	TemplateDefault           = "default"
	TemplateItalyMachinery    = "italy-machinery"
	TemplateGermanyIndustrial = "germany-industrial"
)

// Default scoring parameters shared by all templates.
const (
	defaultWeightEmailQuality     = 0.25
	defaultWeightCompanyRelevance = 0.35
	defaultWeightGeographic       = 0.25
	defaultWeightEngagement       = 0.15

	defaultThresholdHigh   = 80
	defaultThresholdMedium = 50
	defaultThresholdLow    = 25

	defaultBonusOEM       = 1.3
	defaultBonusGeography = 2.0
	defaultBonusDomain    = 1.2

	defaultEmailBaseScore           = 50
	defaultCorporateDomainBonus     = 25
	defaultFreeProviderPenalty      = 30
	defaultStructuredLocalPartBonus = 15
	defaultAutomatedSenderPenalty   = 40
	defaultMalformedPenalty         = 30
)

var defaultPersonalDomains = []string{
	"gmail.com", "yahoo.com", "yahoo.it", "yahoo.de", "hotmail.com",
	"hotmail.it", "outlook.com", "aol.com", "icloud.com", "live.com",
	"msn.com", "libero.it", "virgilio.it", "tiscali.it", "alice.it",
	"web.de", "gmx.de", "gmx.net", "t-online.de", "freenet.de",
}

var defaultRolePrefixes = []string{
	"hr@", "jobs@", "careers@", "recruiting@", "press@", "media@",
	"privacy@", "legal@", "billing@", "invoice@", "abuse@",
	"postmaster@", "webmaster@",
}

var defaultSuspiciousPatterns = []string{
	`^[a-z0-9]{24,}@`, // machine-generated local parts
	`^(test|demo|sample|example)[\.\-_0-9]*@`,
	`\d{8,}`, // long digit runs anywhere in the address
	`^(spam|trash|junk|temp|fake)`,
}

func templates() map[string]func() *FilterConfig {
	return map[string]func() *FilterConfig{
		TemplateDefault:           defaultTemplate,
		TemplateItalyMachinery:    italyMachineryTemplate,
		TemplateGermanyIndustrial: germanyIndustrialTemplate,
	}
}

// Templates returns the names of all built-in presets, sorted.
func Templates() []string {
	reg := templates()
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromTemplate returns an independent copy of the named preset.
func FromTemplate(name string) (*FilterConfig, error) {
	build, ok := templates()[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q, available: %v", name, Templates())
	}
	return build(), nil
}

func baseTemplate() *FilterConfig {
	return &FilterConfig{
		Scoring: Scoring{
			Weights: Weights{
				EmailQuality:       defaultWeightEmailQuality,
				CompanyRelevance:   defaultWeightCompanyRelevance,
				GeographicPriority: defaultWeightGeographic,
				Engagement:         defaultWeightEngagement,
			},
			Thresholds: Thresholds{
				High:   defaultThresholdHigh,
				Medium: defaultThresholdMedium,
				Low:    defaultThresholdLow,
			},
			Bonuses: Bonuses{
				OEM:       defaultBonusOEM,
				Geography: defaultBonusGeography,
				Domain:    defaultBonusDomain,
			},
		},
		Exclusions: Exclusions{
			PersonalDomains: copyStrings(defaultPersonalDomains),
			RolePrefixes:    copyStrings(defaultRolePrefixes),
			// Empty term lists enable a vertical with its built-in,
			// language-tagged default terms.
			ExcludedIndustries: map[string][]string{
				string(domain.VerticalHealthcare): nil,
				string(domain.VerticalEducation):  nil,
				string(domain.VerticalGovernment): nil,
				string(domain.VerticalLegal):      nil,
				string(domain.VerticalTourism):    nil,
				string(domain.VerticalPharmacy):   nil,
				string(domain.VerticalResearch):   nil,
			},
			SuspiciousPatterns: copyStrings(defaultSuspiciousPatterns),
		},
		EmailQuality: EmailQuality{
			BaseScore:                defaultEmailBaseScore,
			CorporateDomainBonus:     defaultCorporateDomainBonus,
			FreeProviderPenalty:      defaultFreeProviderPenalty,
			StructuredLocalPartBonus: defaultStructuredLocalPartBonus,
			AutomatedSenderPenalty:   defaultAutomatedSenderPenalty,
			MalformedPenalty:         defaultMalformedPenalty,
			FreeProviders:            copyStrings(defaultPersonalDomains),
		},
	}
}

func defaultTemplate() *FilterConfig {
	cfg := baseTemplate()
	cfg.Metadata = Metadata{Name: "default", Version: "1.0.0"}
	cfg.Target = Target{
		Country:   "Italy",
		Industry:  "industrial-machinery",
		Languages: []string{"en"},
	}
	cfg.CompanyKeywords = CompanyKeywords{
		Primary: KeywordSet{
			Positive: []string{"manufacturer", "industrial", "machinery", "oem"},
			Negative: []string{"consulting", "marketing", "recruiting"},
		},
		Secondary: KeywordSet{
			Positive: []string{"engineering", "production", "equipment", "components"},
			Negative: []string{"blog", "forum", "news"},
		},
	}
	cfg.GeographicRules = GeographicRules{
		TargetRegions: []string{"Germany", "France", "Spain", "Austria", "Switzerland"},
		Multipliers:   map[string]float64{},
	}
	return cfg
}

func italyMachineryTemplate() *FilterConfig {
	cfg := baseTemplate()
	cfg.Metadata = Metadata{Name: "italy-machinery", Version: "1.0.0"}
	cfg.Target = Target{
		Country:   "Italy",
		Industry:  "hydraulic-machinery",
		Languages: []string{"it", "en"},
	}
	cfg.CompanyKeywords = CompanyKeywords{
		Primary: KeywordSet{
			Positive: []string{
				"hydraulic", "oleodinamica", "oleodinamico", "oem",
				"manufacturer", "produttore", "macchinari", "pompe", "valvole",
			},
			Negative: []string{"consulting", "consulenza", "marketing", "recruiting"},
		},
		Secondary: KeywordSet{
			Positive: []string{
				"industrial", "industriale", "meccanica", "engineering",
				"automazione", "componenti",
			},
			Negative: []string{"blog", "forum", "rivista"},
		},
	}
	cfg.GeographicRules = GeographicRules{
		TargetRegions: []string{"Germany", "France", "Spain", "Austria", "Switzerland", "Slovenia"},
		Multipliers: map[string]float64{
			"Italy":   1.0,
			"Germany": 0.9,
			"France":  0.8,
		},
	}
	return cfg
}

func germanyIndustrialTemplate() *FilterConfig {
	cfg := baseTemplate()
	cfg.Metadata = Metadata{Name: "germany-industrial", Version: "1.0.0"}
	cfg.Target = Target{
		Country:   "Germany",
		Industry:  "industrial-equipment",
		Languages: []string{"de", "en"},
	}
	cfg.CompanyKeywords = CompanyKeywords{
		Primary: KeywordSet{
			Positive: []string{
				"hersteller", "maschinenbau", "oem", "manufacturer",
				"anlagenbau", "fertigung", "hydraulik",
			},
			Negative: []string{"beratung", "consulting", "marketing", "personal"},
		},
		Secondary: KeywordSet{
			Positive: []string{"industrie", "industrial", "technik", "engineering", "automation"},
			Negative: []string{"blog", "forum", "magazin"},
		},
	}
	cfg.GeographicRules = GeographicRules{
		TargetRegions: []string{"Austria", "Switzerland", "Netherlands", "Italy", "France"},
		Multipliers: map[string]float64{
			"Germany": 1.0,
			"Austria": 0.9,
		},
	}
	return cfg
}
