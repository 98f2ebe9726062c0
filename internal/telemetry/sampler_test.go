package telemetry

import (
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/stretchr/testify/require"
	"testing"
)

// TestDeltaSnapshot subtracts counters and keeps gauges.
func TestDeltaSnapshot(t *testing.T) {
	prev := snapshot{
		tiers:      []model.TierStats{{Tier: model.Hot, Entries: 5, Hits: 10, Sets: 4}},
		fallbacks:  1,
		sweepScans: 7,
	}
	cur := snapshot{
		tiers:      []model.TierStats{{Tier: model.Hot, Entries: 3, Capacity: 100, Hits: 15, Sets: 4, Evictions: 2}},
		fallbacks:  3,
		sweepScans: 9,
	}

	d := deltaSnapshot(prev, cur)
	require.Len(t, d.tiers, 1)
	require.Equal(t, model.Hot, d.tiers[0].Tier)
	require.Equal(t, int64(3), d.tiers[0].Entries)
	require.Equal(t, int64(100), d.tiers[0].Capacity)
	require.Equal(t, int64(5), d.tiers[0].Hits)
	require.Equal(t, int64(0), d.tiers[0].Sets)
	require.Equal(t, int64(2), d.tiers[0].Evictions)
	require.Equal(t, uint64(2), d.fallbacks)
	require.Equal(t, uint64(2), d.sweepScans)
}

// TestDelta_Reset treats the current value as the delta after a counter reset.
func TestDelta_Reset(t *testing.T) {
	require.Equal(t, uint64(3), delta(10, 3))
	require.Equal(t, uint64(7), delta(3, 10))
	require.Equal(t, int64(4), delta64(0, 4))
}
