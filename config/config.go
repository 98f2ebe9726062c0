package config

import (
	"errors"
	"fmt"
	"github.com/Borislavv/go-tiered-cache/model"
	"gopkg.in/yaml.v3"
	"os"
)

var ErrInvalidConfig = errors.New("invalid cache config")

// AdjustConfig fills zero values with defaults. It is safe to call more than once.
func (cfg *Cache) AdjustConfig() {
	if cfg.Hot.Capacity == 0 {
		cfg.Hot.Capacity = DefaultHotCapacity
	}
	if cfg.Session.Capacity == 0 {
		cfg.Session.Capacity = DefaultSessionCapacity
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = DefaultSessionTTL
	}
	if cfg.Forever.Capacity == 0 {
		cfg.Forever.Capacity = DefaultForeverCapacity
	}

	if cfg.Sweeper.Enabled() {
		if cfg.Sweeper.Rate <= 0 {
			cfg.Sweeper.Rate = DefaultSweeperRate
		}
		if cfg.Sweeper.Batch <= 0 {
			cfg.Sweeper.Batch = DefaultSweeperBatch
		}
	}

	if cfg.Telemetry.Enabled() && cfg.Telemetry.Interval <= 0 {
		cfg.Telemetry.Interval = DefaultTelemetryInterval
	}

	if cfg.Payload.Tier == "" {
		cfg.Payload.Tier = model.Hot
	} else if tier, err := model.ParseTier(string(cfg.Payload.Tier)); err == nil {
		cfg.Payload.Tier = tier
	}
}

// Validate reports values that AdjustConfig cannot repair.
func (cfg *Cache) Validate() error {
	if cfg.Hot.Capacity < 0 {
		return fmt.Errorf("%w: hot.capacity must be positive, got %d", ErrInvalidConfig, cfg.Hot.Capacity)
	}
	if cfg.Session.Capacity < 0 {
		return fmt.Errorf("%w: session.capacity must be positive, got %d", ErrInvalidConfig, cfg.Session.Capacity)
	}
	if cfg.Session.TTL < 0 {
		return fmt.Errorf("%w: session.ttl must be positive, got %s", ErrInvalidConfig, cfg.Session.TTL)
	}
	if cfg.Forever.Capacity < 0 {
		return fmt.Errorf("%w: forever.capacity must be positive, got %d", ErrInvalidConfig, cfg.Forever.Capacity)
	}
	if cfg.Payload.Tier != "" {
		if _, err := model.ParseTier(string(cfg.Payload.Tier)); err != nil {
			return fmt.Errorf("%w: payload.tier: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

func LoadConfig(path string) (*Cache, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	cfg := &Cache{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.AdjustConfig()

	return cfg, nil
}
