package telemetry

import (
	"context"
	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/internal/cache"
	"github.com/Borislavv/go-tiered-cache/internal/sweeper"
	"log/slog"
	"time"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.TelemetryCfg
	logger   *slog.Logger
	cache    cache.Cacher
	sweeper  sweeper.Sweeper
	interval time.Duration
}

func New(
	ctx context.Context,
	cfg *config.TelemetryCfg,
	logger *slog.Logger,
	cache cache.Cacher,
	sweeper sweeper.Sweeper,
) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	l := &Logs{
		ctx:     ctx,
		cancel:  cancel,
		cfg:     cfg,
		logger:  logger,
		cache:   cache,
		sweeper: sweeper,
	}
	if cfg.Enabled() {
		l.interval = cfg.Interval
	}
	return l.run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

func (l *Logs) Close() error {
	l.cancel()
	return nil
}

func (l *Logs) run() *Logs {
	if l.cfg.Enabled() && l.interval > 0 {
		go l.loop()
	}
	return l
}

func (l *Logs) loop() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	s := newSampler(l.cache, l.sweeper)
	prev := s.snapshot()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := s.snapshot()
			d := deltaSnapshot(prev, cur)
			prev = cur

			common := []any{"interval", l.interval.String()}

			for _, t := range d.tiers {
				l.logger.Info("tier",
					append(common,
						"tier", t.Tier.String(),
						"entries", t.Entries,
						"capacity", t.Capacity,
						"hits", t.Hits,
						"misses", t.Misses,
						"sets", t.Sets,
						"evictions", t.Evictions,
						"expirations", t.Expirations,
					)...,
				)
			}

			if d.sweepScans > 0 {
				l.logger.Info("sweeper",
					append(common,
						"scans", int64(d.sweepScans),
						"hits", int64(d.sweepHits),
						"misses", int64(d.sweepMisses),
						"removed", int64(d.sweepRemoved),
					)...,
				)
			}

			if d.fallbacks > 0 {
				l.logger.Warn("unknown_tier_fallbacks", append(common, "count", int64(d.fallbacks))...)
			}
		}
	}
}
