package sweeper

// NoOpSweeper is used when the sweeper is disabled; expired entries are then removed lazily only.
type NoOpSweeper struct{}

// SweeperMetrics always returns zero values.
func (NoOpSweeper) SweeperMetrics() (removed, scans, hits, misses int64) {
	return 0, 0, 0, 0
}

// Close does nothing and returns nil.
func (NoOpSweeper) Close() error {
	return nil
}
