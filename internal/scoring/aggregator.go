package scoring

import (
	"math"
	"sync"

	"github.com/jonesrussell/leadfilter/internal/config"
	"github.com/jonesrussell/leadfilter/internal/domain"
	"github.com/jonesrussell/leadfilter/internal/logger"
)

// defaultCacheCapacity bounds the memoization cache per aggregator.
const defaultCacheCapacity = 10000

// Aggregator combines the weighted sub-scores, applies bonuses, classifies
// into priority tiers, and memoizes results per normalized address.
//
// The cache is owned by the aggregator instance, never global, so parallel
// workers can each hold their own aggregator without shared state. Within
// one instance all cache and config access is serialized by a single mutex;
// scoring performs no blocking calls, so contention stays negligible.
type Aggregator struct {
	mu      sync.Mutex
	cfg     *config.FilterConfig
	scorer  *RelevanceScorer
	bonuses *BonusCalculator
	cache   *resultCache
	log     logger.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithCacheCapacity overrides the default memoization cache bound.
func WithCacheCapacity(n int) Option {
	return func(a *Aggregator) {
		a.cache = newResultCache(n)
	}
}

// NewAggregator builds an aggregator for one validated configuration.
// The configuration is cloned: later mutation by the caller cannot leak
// into an active run.
func NewAggregator(cfg *config.FilterConfig, log logger.Logger, opts ...Option) *Aggregator {
	if log == nil {
		log = logger.NewNop()
	}
	snapshot := cfg.Clone()
	a := &Aggregator{
		cfg:     snapshot,
		scorer:  NewRelevanceScorer(snapshot),
		bonuses: NewBonusCalculator(snapshot),
		cache:   newResultCache(defaultCacheCapacity),
		log:     log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CalculateScore scores a single lead. Duplicate addresses return the
// identical cached result object until the cache is cleared or the
// configuration swapped.
func (a *Aggregator) CalculateScore(lead *domain.Lead) *domain.ScoreResult {
	key := lead.CacheKey()

	a.mu.Lock()
	defer a.mu.Unlock()

	if res, ok := a.cache.get(key); ok {
		return res
	}

	res := a.compute(lead)
	a.cache.put(key, res)
	return res
}

func (a *Aggregator) compute(lead *domain.Lead) *domain.ScoreResult {
	w := a.cfg.Scoring.Weights

	breakdown := domain.Breakdown{
		EmailQuality:       component(a.scorer.EmailQuality(lead), w.EmailQuality),
		CompanyRelevance:   component(a.scorer.CompanyRelevance(lead), w.CompanyRelevance),
		GeographicPriority: component(a.scorer.GeographicPriority(lead), w.GeographicPriority),
		Engagement:         component(a.scorer.Engagement(lead), w.Engagement),
	}
	bonuses := a.bonuses.Calculate(lead)

	weighted := breakdown.EmailQuality.Weighted +
		breakdown.CompanyRelevance.Weighted +
		breakdown.GeographicPriority.Weighted +
		breakdown.Engagement.Weighted
	total := round2(weighted * bonuses.Product())

	res := &domain.ScoreResult{
		Lead:       lead,
		TotalScore: total,
		Breakdown:  breakdown,
		Bonuses:    bonuses,
		Priority:   a.classify(total),
	}

	a.log.Debug("lead scored",
		logger.String("address", lead.Address),
		logger.Float64("total_score", total),
		logger.String("priority", string(res.Priority)),
	)
	return res
}

// classify maps a total score to its tier. Boundary equality promotes:
// a score exactly on the high threshold is HIGH, not MEDIUM.
func (a *Aggregator) classify(score float64) domain.Priority {
	t := a.cfg.Scoring.Thresholds
	switch {
	case score >= t.High:
		return domain.PriorityHigh
	case score >= t.Medium:
		return domain.PriorityMedium
	case score >= t.Low:
		return domain.PriorityLow
	default:
		return domain.PriorityExcluded
	}
}

// ScoreLeads scores a batch in input order.
func (a *Aggregator) ScoreLeads(leads []*domain.Lead) []*domain.ScoreResult {
	results := make([]*domain.ScoreResult, len(leads))
	for i, lead := range leads {
		results[i] = a.CalculateScore(lead)
	}
	return results
}

// UpdateConfig atomically swaps the active configuration and invalidates
// the entire cache. Stale results under a superseded ruleset are never
// returned.
func (a *Aggregator) UpdateConfig(cfg *config.FilterConfig) {
	snapshot := cfg.Clone()

	a.mu.Lock()
	a.cfg = snapshot
	a.scorer = NewRelevanceScorer(snapshot)
	a.bonuses = NewBonusCalculator(snapshot)
	a.cache.clear()
	a.mu.Unlock()

	a.log.Info("scoring configuration updated",
		logger.String("name", snapshot.Metadata.Name),
		logger.String("version", snapshot.Metadata.Version),
	)
}

// ClearCache drops every memoized result.
func (a *Aggregator) ClearCache() {
	a.mu.Lock()
	a.cache.clear()
	a.mu.Unlock()
}

// CacheLen returns the number of memoized results.
func (a *Aggregator) CacheLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cache.len()
}

func component(raw, weight float64) domain.Component {
	return domain.Component{Raw: raw, Weighted: raw * weight}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
