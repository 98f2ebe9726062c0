package sweeper

import (
	"github.com/stretchr/testify/require"
	"testing"
)

// TestNoOpSweeper_Metrics returns zero values.
func TestNoOpSweeper_Metrics(t *testing.T) {
	var s NoOpSweeper

	removed, scans, hits, misses := s.SweeperMetrics()
	require.Equal(t, int64(0), removed)
	require.Equal(t, int64(0), scans)
	require.Equal(t, int64(0), hits)
	require.Equal(t, int64(0), misses)
}

// TestNoOpSweeper_Close returns nil.
func TestNoOpSweeper_Close(t *testing.T) {
	var s NoOpSweeper
	require.NoError(t, s.Close())
}
