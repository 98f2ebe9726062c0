package config

import (
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestDefault_MatchesTierTable verifies the fixed tier capacities and TTL.
func TestDefault_MatchesTierTable(t *testing.T) {
	cfg := Default()

	require.Equal(t, 100, cfg.Hot.Capacity)
	require.Equal(t, 5000, cfg.Session.Capacity)
	require.Equal(t, 36000*time.Second, cfg.Session.TTL)
	require.Equal(t, 2000, cfg.Forever.Capacity)
	require.Equal(t, model.Hot, cfg.Payload.Tier)
	require.False(t, cfg.Sweeper.Enabled())
	require.False(t, cfg.Telemetry.Enabled())
}

// TestAdjustConfig_FillsZeroValues fills every zero value with its default.
func TestAdjustConfig_FillsZeroValues(t *testing.T) {
	cfg := &Cache{Sweeper: &SweeperCfg{}, Telemetry: &TelemetryCfg{}}
	cfg.AdjustConfig()

	require.Equal(t, DefaultHotCapacity, cfg.Hot.Capacity)
	require.Equal(t, DefaultSessionCapacity, cfg.Session.Capacity)
	require.Equal(t, DefaultSessionTTL, cfg.Session.TTL)
	require.Equal(t, DefaultForeverCapacity, cfg.Forever.Capacity)
	require.Equal(t, DefaultSweeperRate, cfg.Sweeper.Rate)
	require.Equal(t, DefaultSweeperBatch, cfg.Sweeper.Batch)
	require.Equal(t, DefaultTelemetryInterval, cfg.Telemetry.Interval)
	require.Equal(t, model.Hot, cfg.Payload.Tier)
}

// TestAdjustConfig_NormalizesPayloadTier lower-cases a valid payload tier.
func TestAdjustConfig_NormalizesPayloadTier(t *testing.T) {
	cfg := &Cache{Payload: PayloadCfg{Tier: "SESSION"}}
	cfg.AdjustConfig()
	require.Equal(t, model.Session, cfg.Payload.Tier)
}

// TestLoadConfig_ParsesYAML reads every section from a yaml file.
func TestLoadConfig_ParsesYAML(t *testing.T) {
	path := writeYAML(t, `
hot:
  capacity: 10
session:
  capacity: 20
  ttl: 1m
forever:
  capacity: 30
sweeper:
  rate: 5
telemetry:
  interval: 2s
payload:
  inline_max_rows: 3
  tier: forever
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 10, cfg.Hot.Capacity)
	require.Equal(t, 20, cfg.Session.Capacity)
	require.Equal(t, time.Minute, cfg.Session.TTL)
	require.Equal(t, 30, cfg.Forever.Capacity)
	require.Equal(t, 5, cfg.Sweeper.Rate)
	require.Equal(t, DefaultSweeperBatch, cfg.Sweeper.Batch)
	require.Equal(t, 2*time.Second, cfg.Telemetry.Interval)
	require.Equal(t, 3, cfg.Payload.InlineMaxRows)
	require.Equal(t, model.Forever, cfg.Payload.Tier)
}

// TestLoadConfig_EmptyFileUsesDefaults yields the default tier table.
func TestLoadConfig_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeYAML(t, "{}\n"))
	require.NoError(t, err)
	require.Equal(t, Default().Hot, cfg.Hot)
	require.Equal(t, Default().Session, cfg.Session)
	require.Equal(t, Default().Forever, cfg.Forever)
}

// TestLoadConfig_MissingFile wraps the stat error.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadConfig_BadYAML reports unmarshal failures.
func TestLoadConfig_BadYAML(t *testing.T) {
	_, err := LoadConfig(writeYAML(t, "hot: [1, 2"))
	require.Error(t, err)
}

// TestLoadConfig_Invalid rejects negative capacities and unknown payload tiers.
func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeYAML(t, "hot:\n  capacity: -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeYAML(t, "payload:\n  tier: warm\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.ErrorIs(t, err, model.ErrUnknownTier)
}
