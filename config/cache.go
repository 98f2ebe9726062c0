package config

import "github.com/Borislavv/go-tiered-cache/model"

// Cache groups configuration of all cache tiers and optional workers.
// Optional workers are disabled by setting their section to nil.
type Cache struct {
	// Hot configures the LRU tier.
	Hot TierCfg `yaml:"hot"`

	// Session configures the TTL tier.
	Session SessionCfg `yaml:"session"`

	// Forever configures the LFU tier.
	Forever TierCfg `yaml:"forever"`

	// Sweeper configures background removal of expired session entries.
	// If nil, expired entries are only removed lazily (on Get, Set and Len).
	Sweeper *SweeperCfg `yaml:"sweeper"`

	// Telemetry configures periodic per-tier stat logs.
	// If nil, no stat logs are written.
	Telemetry *TelemetryCfg `yaml:"telemetry"`

	// Payload configures the producer/renderer payload hand-off.
	Payload PayloadCfg `yaml:"payload"`
}

// Default returns the fixed tier table: hot LRU(100), session TTL(5000, 10h), forever LFU(2000).
func Default() *Cache {
	return &Cache{
		Hot:     TierCfg{Capacity: DefaultHotCapacity},
		Session: SessionCfg{Capacity: DefaultSessionCapacity, TTL: DefaultSessionTTL},
		Forever: TierCfg{Capacity: DefaultForeverCapacity},
		Payload: PayloadCfg{InlineMaxRows: DefaultInlineMaxRows, Tier: model.Hot},
	}
}
