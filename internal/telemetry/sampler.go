package telemetry

import (
	"github.com/Borislavv/go-tiered-cache/internal/cache"
	"github.com/Borislavv/go-tiered-cache/internal/sweeper"
	"github.com/Borislavv/go-tiered-cache/model"
)

type sampler struct {
	cache   cache.Cacher
	sweeper sweeper.Sweeper
}

func newSampler(c cache.Cacher, s sweeper.Sweeper) sampler {
	return sampler{cache: c, sweeper: s}
}

// snapshot holds cumulative counters (monotonic); tier Entries and Capacity are gauges.
type snapshot struct {
	tiers []model.TierStats

	fallbacks uint64

	sweepRemoved uint64
	sweepScans   uint64
	sweepHits    uint64
	sweepMisses  uint64
}

func (s sampler) snapshot() snapshot {
	removed, scans, hits, misses := s.sweeper.SweeperMetrics()

	return snapshot{
		tiers:     s.cache.Metrics(),
		fallbacks: uint64(max(s.cache.Fallbacks(), 0)),

		sweepRemoved: uint64(max(removed, 0)),
		sweepScans:   uint64(max(scans, 0)),
		sweepHits:    uint64(max(hits, 0)),
		sweepMisses:  uint64(max(misses, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	tiers := make([]model.TierStats, len(cur.tiers))
	for i, c := range cur.tiers {
		var p model.TierStats
		if i < len(prev.tiers) {
			p = prev.tiers[i]
		}
		tiers[i] = model.TierStats{
			Tier:        c.Tier,
			Entries:     c.Entries,
			Capacity:    c.Capacity,
			Hits:        delta64(p.Hits, c.Hits),
			Misses:      delta64(p.Misses, c.Misses),
			Sets:        delta64(p.Sets, c.Sets),
			Evictions:   delta64(p.Evictions, c.Evictions),
			Expirations: delta64(p.Expirations, c.Expirations),
		}
	}

	return snapshot{
		tiers:     tiers,
		fallbacks: delta(prev.fallbacks, cur.fallbacks),

		sweepRemoved: delta(prev.sweepRemoved, cur.sweepRemoved),
		sweepScans:   delta(prev.sweepScans, cur.sweepScans),
		sweepHits:    delta(prev.sweepHits, cur.sweepHits),
		sweepMisses:  delta(prev.sweepMisses, cur.sweepMisses),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}

func delta64(prev, cur int64) int64 {
	return int64(delta(uint64(max(prev, 0)), uint64(max(cur, 0))))
}
