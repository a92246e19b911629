package domain

// ExclusionCategory tags why a lead was disqualified before scoring.
// The set is closed: every category the engine can emit is listed here.
type ExclusionCategory string

// Exclusion category constants.
const (
	CategoryPersonalProvider  ExclusionCategory = "personal-email-provider"
	CategoryRolePrefix        ExclusionCategory = "role-prefix"
	CategoryExcludedVertical  ExclusionCategory = "excluded-vertical"
	CategoryExcludedGeography ExclusionCategory = "excluded-geography"
	CategorySuspiciousPattern ExclusionCategory = "suspicious-pattern"
)

// Severity grades how strong the exclusion signal is.
type Severity string

// Severity constants.
const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ExclusionReason is one matched disqualification rule.
type ExclusionReason struct {
	Category ExclusionCategory `json:"category"`
	Severity Severity          `json:"severity"`
}

// ExclusionVerdict is produced once per lead before scoring.
// When Excluded is true the lead never reaches the scorer.
type ExclusionVerdict struct {
	Excluded    bool              `json:"excluded"`
	Reasons     []ExclusionReason `json:"reasons,omitempty"`
	MatchedTerm string            `json:"matched_term,omitempty"`
}

// ExclusionEntry is one line of the batch exclusion audit report.
type ExclusionEntry struct {
	Address     string            `json:"address"`
	Domain      string            `json:"domain"`
	Category    ExclusionCategory `json:"category"`
	MatchedTerm string            `json:"matched_term"`
}

// Vertical names a forbidden industry. The set is closed so that
// exhaustiveness stays checkable and no category can go silently dead.
type Vertical string

// Vertical constants.
const (
	VerticalHealthcare Vertical = "healthcare"
	VerticalEducation  Vertical = "education"
	VerticalGovernment Vertical = "government"
	VerticalLegal      Vertical = "legal"
	VerticalTourism    Vertical = "tourism"
	VerticalPharmacy   Vertical = "pharmacy"
	VerticalResearch   Vertical = "research"
)

// KnownVerticals returns every vertical the exclusion engine understands.
func KnownVerticals() []Vertical {
	return []Vertical{
		VerticalHealthcare,
		VerticalEducation,
		VerticalGovernment,
		VerticalLegal,
		VerticalTourism,
		VerticalPharmacy,
		VerticalResearch,
	}
}

// IsKnownVertical reports whether name is a member of the closed set.
func IsKnownVertical(name string) bool {
	for _, v := range KnownVerticals() {
		if string(v) == name {
			return true
		}
	}
	return false
}
