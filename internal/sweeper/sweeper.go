// Package sweeper removes expired session entries in the background so that
// memory is released even for keys nobody reads again.
package sweeper

import (
	"context"
	"github.com/Borislavv/go-tiered-cache/config"
	"log/slog"
)

type Sweeper interface {
	SweeperMetrics() (removed, scans, hits, misses int64)
	Close() error
}

// Target is a store holding expiring entries.
type Target interface {
	PurgeExpired(limit int) (removed int64)
}

type SweepWorker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.SweeperCfg
	logger   *slog.Logger
	target   Target
	sweeps   <-chan struct{}
	counters *sweeperCounters
}

func New(
	ctx context.Context,
	cfg *config.SweeperCfg,
	logger *slog.Logger,
	target Target,
) Sweeper {
	if !cfg.Enabled() {
		return &NoOpSweeper{}
	}

	ctx, cancel := context.WithCancel(ctx)
	return (&SweepWorker{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		target:   target,
		sweeps:   pace(ctx, cfg.Rate),
		counters: newSweeperCounters(),
	}).run()
}

func (w *SweepWorker) SweeperMetrics() (removed, scans, hits, misses int64) {
	return w.counters.snapshot()
}

func (w *SweepWorker) Close() error {
	w.cancel()
	return nil
}

func (w *SweepWorker) run() *SweepWorker {
	w.logger.Info("sweeper is running", "rate", w.cfg.Rate, "batch", w.cfg.Batch)
	go w.loop()
	return w
}

func (w *SweepWorker) loop() {
	defer w.logger.Info("sweeper is stopped")
	for {
		select {
		case <-w.ctx.Done():
			return
		case _, ok := <-w.sweeps:
			if !ok {
				return
			}
			w.sweep()
		}
	}
}

func (w *SweepWorker) sweep() {
	w.counters.scans.Add(1)
	removed := w.target.PurgeExpired(w.cfg.Batch)
	if removed == 0 {
		w.counters.scanMisses.Add(1)
		return
	}
	w.counters.scanHits.Add(1)
	w.counters.removed.Add(removed)
}
