package sweeper

import "sync/atomic"

type sweeperCounters struct {
	removed    atomic.Int64 // expired entries removed
	scans      atomic.Int64 // total passes
	scanHits   atomic.Int64 // passes that removed something
	scanMisses atomic.Int64 // passes that found nothing expired
}

func newSweeperCounters() *sweeperCounters {
	return &sweeperCounters{}
}

func (c *sweeperCounters) snapshot() (removed, scans, hits, misses int64) {
	return c.removed.Load(), c.scans.Load(), c.scanHits.Load(), c.scanMisses.Load()
}
