package pipeline

import (
	"time"

	"github.com/jonesrussell/leadfilter/internal/domain"
	"github.com/jonesrussell/leadfilter/internal/scoring"
)

// Result is the outcome of one batch run: four priority partitions, the
// hard-exclusion audit trail, and aggregate statistics.
//
// Hard-excluded leads appear only in Exclusions; leads excluded by low
// score appear in the EXCLUDED partition. The two are kept apart so a
// downstream analyst can always tell why a contact is unreachable.
type Result struct {
	RunID      string                                    `json:"run_id"`
	Partitions map[domain.Priority][]*domain.ScoreResult `json:"partitions"`
	Exclusions []domain.ExclusionEntry                   `json:"exclusions"`
	Statistics scoring.Statistics                        `json:"statistics"`
	// Skipped counts leads left unprocessed after a context cancellation.
	Skipped  int           `json:"skipped,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Partition returns the scored leads in one tier, in input order.
func (r *Result) Partition(tier domain.Priority) []*domain.ScoreResult {
	return r.Partitions[tier]
}
