package scoring

import "github.com/jonesrussell/leadfilter/internal/domain"

// resultCache memoizes score results keyed by normalized address.
// Capacity is bounded with least-recently-inserted eviction so memory stays
// capped on large batches. The cache is a pure optimization: a miss is
// always safe to recompute. Callers serialize access (the aggregator holds
// its mutex around every cache operation).
type resultCache struct {
	capacity int
	entries  map[string]*domain.ScoreResult
	order    []string // insertion order, oldest first
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		capacity: capacity,
		entries:  make(map[string]*domain.ScoreResult, capacity),
	}
}

func (c *resultCache) get(key string) (*domain.ScoreResult, bool) {
	res, ok := c.entries[key]
	return res, ok
}

func (c *resultCache) put(key string, res *domain.ScoreResult) {
	if c.capacity <= 0 {
		return
	}
	if _, exists := c.entries[key]; exists {
		c.entries[key] = res
		return
	}
	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = res
	c.order = append(c.order, key)
}

func (c *resultCache) clear() {
	c.entries = make(map[string]*domain.ScoreResult, c.capacity)
	c.order = c.order[:0]
}

func (c *resultCache) len() int {
	return len(c.entries)
}
