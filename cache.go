// Package tieredcache is an in-process cache with three isolated tiers:
// hot (LRU), session (TTL) and forever (LFU). Values are opaque; a miss is
// reported as found == false and never as an error.
package tieredcache

import (
	"context"
	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/cache"
	"github.com/Borislavv/go-tiered-cache/internal/sweeper"
	"github.com/Borislavv/go-tiered-cache/internal/telemetry"
	"io"
	"log/slog"
)

type TieredCache interface {
	cache.Cacher
	sweeper.Sweeper
	telemetry.Logger
	io.Closer
}

type Cache struct {
	cache.Cacher
	sweeper.Sweeper
	telemetry.Logger
	cls context.CancelFunc
}

// New builds the tiers from cfg (config.Default() when nil) and starts the optional
// sweeper and telemetry workers. Workers stop on Close or when ctx is done.
func New(ctx context.Context, cfg *config.Cache, logger *slog.Logger, opts ...Option) *Cache {
	o := applyOptions(opts)
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg.AdjustConfig()

	ctx, cancel := context.WithCancel(ctx)
	cacher := cache.New(cfg, logger, o.clock)
	sweep := sweeper.New(ctx, cfg.Sweeper, logger, cacher)
	telemeter := telemetry.New(ctx, cfg.Telemetry, logger, cacher, sweep)
	return &Cache{cls: cancel, Cacher: cacher, Sweeper: sweep, Logger: telemeter}
}

func (c *Cache) Close() error {
	c.cls()
	return nil
}
