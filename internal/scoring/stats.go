package scoring

import (
	"sort"

	"github.com/jonesrussell/leadfilter/internal/domain"
)

// Statistics summarizes a batch of score results.
type Statistics struct {
	Total      int                     `json:"total"`
	Average    float64                 `json:"average"`
	Min        float64                 `json:"min"`
	Max        float64                 `json:"max"`
	ByPriority map[domain.Priority]int `json:"by_priority"`
}

// SortByScore returns a new slice ordered by total score; the input is not
// mutated. Nil results sort as score 0.
func SortByScore(results []*domain.ScoreResult, ascending bool) []*domain.ScoreResult {
	out := make([]*domain.ScoreResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := scoreOf(out[i]), scoreOf(out[j])
		if ascending {
			return si < sj
		}
		return si > sj
	})
	return out
}

// FilterByPriority returns the results in the given tier, preserving order.
func FilterByPriority(results []*domain.ScoreResult, tier domain.Priority) []*domain.ScoreResult {
	var out []*domain.ScoreResult
	for _, r := range results {
		if r != nil && r.Priority == tier {
			out = append(out, r)
		}
	}
	return out
}

// Stats computes aggregate statistics over a batch.
func Stats(results []*domain.ScoreResult) Statistics {
	stats := Statistics{ByPriority: make(map[domain.Priority]int)}
	var sum float64
	first := true
	for _, r := range results {
		if r == nil {
			continue
		}
		stats.Total++
		stats.ByPriority[r.Priority]++
		sum += r.TotalScore
		if first || r.TotalScore < stats.Min {
			stats.Min = r.TotalScore
		}
		if first || r.TotalScore > stats.Max {
			stats.Max = r.TotalScore
		}
		first = false
	}
	if stats.Total > 0 {
		stats.Average = round2(sum / float64(stats.Total))
	}
	return stats
}

func scoreOf(r *domain.ScoreResult) float64 {
	if r == nil {
		return 0
	}
	return r.TotalScore
}
