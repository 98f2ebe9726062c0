package cache

import (
	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/tier"
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/benbjohnson/clock"
	"log/slog"
)

type Cacher interface {
	Set(key string, value any, tier model.Tier)
	Get(key string, tier model.Tier) (value any, found bool)
	Del(key string, tier model.Tier) (ok bool)
	ClearTier(tier model.Tier)
	ClearAll()
	Len(tier model.Tier) int64
	Metrics() []model.TierStats
	Fallbacks() int64
}

// Cache routes every call to one of three isolated stores by tier.
// Unknown tiers fall back to the hot store.
type Cache struct {
	logger   *slog.Logger
	hot      *tier.LRU
	session  *tier.TTL
	forever  *tier.LFU
	stores   [len(model.Tiers)]tier.Store // lock order: hot, session, forever
	counters *counters
}

func New(cfg *config.Cache, logger *slog.Logger, clk clock.Clock) *Cache {
	c := &Cache{
		logger:   logger,
		hot:      tier.NewLRU(model.Hot, cfg.Hot.Capacity),
		session:  tier.NewTTL(model.Session, cfg.Session.Capacity, cfg.Session.TTL, clk),
		forever:  tier.NewLFU(model.Forever, cfg.Forever.Capacity),
		counters: newCounters(),
	}
	c.stores = [...]tier.Store{c.hot, c.session, c.forever}
	return c
}

func (c *Cache) Set(key string, value any, tier model.Tier) {
	c.store(tier).Set(key, value)
}

func (c *Cache) Get(key string, tier model.Tier) (value any, found bool) {
	return c.store(tier).Get(key)
}

func (c *Cache) Del(key string, tier model.Tier) bool {
	return c.store(tier).Del(key)
}

func (c *Cache) ClearTier(tier model.Tier) {
	c.store(tier).Clear()
}

// ClearAll empties every tier while holding all tier locks, so no call observes a partial clear.
func (c *Cache) ClearAll() {
	for _, s := range c.stores {
		s.Lock()
	}
	for _, s := range c.stores {
		s.ClearUnlocked()
	}
	for i := len(c.stores) - 1; i >= 0; i-- {
		c.stores[i].Unlock()
	}
}

func (c *Cache) Len(tier model.Tier) int64 { return c.store(tier).Len() }
func (c *Cache) Fallbacks() int64         { return c.counters.fallbacks.Load() }

func (c *Cache) Metrics() []model.TierStats {
	out := make([]model.TierStats, 0, len(c.stores))
	for _, s := range c.stores {
		out = append(out, s.Stats())
	}
	return out
}

// PurgeExpired removes expired session entries; used by the sweeper.
func (c *Cache) PurgeExpired(limit int) int64 {
	return c.session.PurgeExpired(limit)
}

func (c *Cache) store(t model.Tier) tier.Store {
	switch t {
	case model.Hot:
		return c.hot
	case model.Session:
		return c.session
	case model.Forever:
		return c.forever
	default:
		c.counters.fallbacks.Add(1)
		c.logger.Debug("unknown cache tier, falling back to hot", "tier", string(t))
		return c.hot
	}
}
