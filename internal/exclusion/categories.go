package exclusion

import "github.com/jonesrussell/leadfilter/internal/domain"

// defaultVerticalTerms holds the built-in term lists per forbidden vertical,
// tagged by language. A configuration can override the terms of a category;
// an enabled category with no configured terms falls back to these,
// filtered by the target languages.
var defaultVerticalTerms = map[domain.Vertical]map[string][]string{
	domain.VerticalHealthcare: {
		"en": {"hospital", "clinic", "medical center", "healthcare", "dental"},
		"it": {"ospedale", "clinica", "ambulatorio", "sanitario", "dentista"},
		"de": {"krankenhaus", "klinik", "arztpraxis", "zahnarzt"},
	},
	domain.VerticalEducation: {
		"en": {"school", "university", "college", "academy", "kindergarten"},
		"it": {"scuola", "universita", "istituto scolastico", "liceo", "asilo"},
		"de": {"schule", "universitat", "hochschule", "gymnasium", "kindergarten"},
	},
	domain.VerticalGovernment: {
		"en": {"ministry", "municipality", "city council", "government", "embassy"},
		"it": {"comune di", "ministero", "provincia di", "regione", "ambasciata"},
		"de": {"ministerium", "stadtverwaltung", "gemeinde", "botschaft"},
	},
	domain.VerticalLegal: {
		"en": {"law firm", "attorney", "notary", "legal services"},
		"it": {"studio legale", "avvocato", "notaio"},
		"de": {"rechtsanwalt", "anwaltskanzlei", "notar"},
	},
	domain.VerticalTourism: {
		"en": {"hotel", "travel agency", "tourism", "resort", "bed and breakfast"},
		"it": {"albergo", "agenzia viaggi", "turismo", "agriturismo"},
		"de": {"reiseburo", "tourismus", "ferienwohnung", "gasthof"},
	},
	domain.VerticalPharmacy: {
		"en": {"pharmacy", "drugstore", "pharmaceutical"},
		"it": {"farmacia", "parafarmacia", "farmaceutico"},
		"de": {"apotheke", "pharmazie"},
	},
	domain.VerticalResearch: {
		"en": {"research institute", "foundation", "ngo", "non-profit", "charity"},
		"it": {"istituto di ricerca", "fondazione", "onlus", "associazione"},
		"de": {"forschungsinstitut", "stiftung", "gemeinnutzig", "verein"},
	},
}

// termsFor resolves the effective term list for one vertical: configured
// terms win; otherwise the built-in defaults for the given languages.
// English defaults always apply as a floor so no category goes silently dead.
func termsFor(v domain.Vertical, configured []string, languages []string) []string {
	if len(configured) > 0 {
		return configured
	}
	byLang := defaultVerticalTerms[v]
	seen := make(map[string]bool)
	var terms []string
	add := func(list []string) {
		for _, t := range list {
			if !seen[t] {
				seen[t] = true
				terms = append(terms, t)
			}
		}
	}
	add(byLang["en"])
	for _, lang := range languages {
		add(byLang[lang])
	}
	return terms
}
