// Package tier implements the bounded stores behind each cache tier.
// Every store guards its structures with its own mutex; the exported Lock/Unlock
// pair plus ClearUnlocked let a caller clear several stores atomically.
package tier

import (
	"github.com/Borislavv/go-tiered-cache/model"
	"sync"
)

type Store interface {
	sync.Locker
	Tier() model.Tier
	Set(key string, value any)
	Get(key string) (value any, found bool)
	Del(key string) (ok bool)
	// Clear removes every entry and returns how many were removed.
	Clear() int64
	// ClearUnlocked is Clear for a caller that already holds the store lock.
	ClearUnlocked() int64
	Len() int64
	Stats() model.TierStats
}

func stats(tier model.Tier, entries int64, capacity int, c *counters) model.TierStats {
	hits, misses, sets, evictions, expirations := c.snapshot()
	return model.TierStats{
		Tier:        tier,
		Entries:     entries,
		Capacity:    int64(capacity),
		Hits:        hits,
		Misses:      misses,
		Sets:        sets,
		Evictions:   evictions,
		Expirations: expirations,
	}
}

func normCapacity(capacity int) int {
	if capacity < 1 {
		return 1
	}
	return capacity
}
