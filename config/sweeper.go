package config

const (
	DefaultSweeperRate  = 10
	DefaultSweeperBatch = 256
)

type SweeperCfg struct {
	// Rate limits how many sweep passes run per second.
	Rate int `yaml:"rate"`

	// Batch caps how many expired entries a single pass removes.
	Batch int `yaml:"batch"`
}

func (cfg *SweeperCfg) Enabled() bool {
	return cfg != nil
}
