package config

import "time"

const DefaultTelemetryInterval = 5 * time.Second

type TelemetryCfg struct {
	// Interval between two stat log lines per tier.
	Interval time.Duration `yaml:"interval"`
}

func (cfg *TelemetryCfg) Enabled() bool {
	return cfg != nil
}
