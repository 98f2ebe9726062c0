package tier

import "sync/atomic"

type counters struct {
	hits        atomic.Int64
	misses      atomic.Int64
	sets        atomic.Int64
	evictions   atomic.Int64 // capacity evictions and collision replacements
	expirations atomic.Int64 // TTL removals (lazy or swept)
}

func newCounters() *counters {
	return &counters{}
}

func (c *counters) snapshot() (hits, misses, sets, evictions, expirations int64) {
	return c.hits.Load(), c.misses.Load(), c.sets.Load(), c.evictions.Load(), c.expirations.Load()
}
