package domain

// Priority is the final classification tier of a lead.
type Priority string

// Priority tier constants.
const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
	// PriorityExcluded marks leads whose score fell below the low
	// threshold. Distinct from hard exclusion, which never reaches scoring.
	PriorityExcluded Priority = "EXCLUDED"
)

// Priorities lists all tiers in descending order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow, PriorityExcluded}
}

// Component holds one sub-score both raw (0-100) and after weighting.
type Component struct {
	Raw      float64 `json:"raw"`
	Weighted float64 `json:"weighted"`
}

// Breakdown holds the four relevance sub-scores.
type Breakdown struct {
	EmailQuality       Component `json:"email_quality"`
	CompanyRelevance   Component `json:"company_relevance"`
	GeographicPriority Component `json:"geographic_priority"`
	Engagement         Component `json:"engagement"`
}

// BonusSet holds the multiplicative adjustments applied to the combined
// weighted score. Each factor is >= 1.0; 1.0 means the bonus did not fire.
type BonusSet struct {
	OEM       float64 `json:"oem"`
	Geography float64 `json:"geography"`
	Domain    float64 `json:"domain"`
}

// Product returns the combined multiplier.
func (b BonusSet) Product() float64 {
	return b.OEM * b.Geography * b.Domain
}

// ScoreResult is the outcome of scoring a single lead.
type ScoreResult struct {
	Lead       *Lead     `json:"lead"`
	TotalScore float64   `json:"total_score"`
	Breakdown  Breakdown `json:"breakdown"`
	Bonuses    BonusSet  `json:"bonuses"`
	Priority   Priority  `json:"priority"`
}
