package metrics

import (
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type staticSource struct {
	stats     []model.TierStats
	fallbacks int64
}

func (s staticSource) Metrics() []model.TierStats { return s.stats }
func (s staticSource) Fallbacks() int64          { return s.fallbacks }

func source() staticSource {
	return staticSource{
		stats: []model.TierStats{
			{Tier: model.Hot, Entries: 2, Capacity: 100, Hits: 7, Misses: 1, Sets: 3, Evictions: 1},
			{Tier: model.Session, Entries: 0, Capacity: 5000, Expirations: 4},
			{Tier: model.Forever, Entries: 1, Capacity: 2000, Hits: 2},
		},
		fallbacks: 5,
	}
}

// TestCollector_Count emits seven series per tier plus the fallback counter.
func TestCollector_Count(t *testing.T) {
	require.Equal(t, 3*7+1, testutil.CollectAndCount(NewCollector(source())))
}

// TestCollector_Values exposes counters labelled by tier.
func TestCollector_Values(t *testing.T) {
	expected := `
# HELP tieredcache_hits_total Total number of cache hits per tier.
# TYPE tieredcache_hits_total counter
tieredcache_hits_total{tier="forever"} 2
tieredcache_hits_total{tier="hot"} 7
tieredcache_hits_total{tier="session"} 0
# HELP tieredcache_tier_fallbacks_total Total number of calls with an unknown tier served by the hot tier.
# TYPE tieredcache_tier_fallbacks_total counter
tieredcache_tier_fallbacks_total 5
`
	err := testutil.CollectAndCompare(NewCollector(source()), strings.NewReader(expected),
		"tieredcache_hits_total", "tieredcache_tier_fallbacks_total")
	require.NoError(t, err)
}

// TestCollector_Registers passes registry consistency checks.
func TestCollector_Registers(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(source())))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 8)
}
