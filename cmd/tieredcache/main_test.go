package main

import (
	"bytes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCmd(newApp(out, zerolog.New(io.Discard)))
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

// TestDemo_PrintsTierStats runs the hand-off and prints one row per tier.
func TestDemo_PrintsTierStats(t *testing.T) {
	out, err := run(t, "demo", "--iterations", "10", "--max-rows", "50")
	require.NoError(t, err)
	require.Contains(t, out, "TIER")
	require.Contains(t, out, "hot")
	require.Contains(t, out, "session")
	require.Contains(t, out, "forever")
	require.Contains(t, out, "unknown tier fallbacks: 0")
}

// TestDemo_RejectsBadFlags validates the row bound.
func TestDemo_RejectsBadFlags(t *testing.T) {
	_, err := run(t, "demo", "--max-rows", "0")
	require.Error(t, err)
}

// TestConfig_PrintsDefaults prints the built-in tier table as yaml.
func TestConfig_PrintsDefaults(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	require.Contains(t, out, "capacity: 100")
	require.Contains(t, out, "capacity: 5000")
	require.Contains(t, out, "ttl: 10h0m0s")
	require.Contains(t, out, "capacity: 2000")
}

// TestConfig_LoadsFile honours --config.
func TestConfig_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hot:\n  capacity: 7\n"), 0o600))

	out, err := run(t, "--config", path, "config")
	require.NoError(t, err)
	require.Contains(t, out, "capacity: 7")
}

// TestConfig_MissingFile surfaces the load error.
func TestConfig_MissingFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "config")
	require.Error(t, err)
}

// TestMedalTable is deterministic and sized as requested.
func TestMedalTable(t *testing.T) {
	a, b := medalTable(3, 12), medalTable(3, 12)
	require.Len(t, a, 12)
	require.Equal(t, a, b)
}
