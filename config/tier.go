package config

import "time"

const (
	DefaultHotCapacity     = 100
	DefaultSessionCapacity = 5000
	DefaultSessionTTL      = 36000 * time.Second
	DefaultForeverCapacity = 2000
)

type TierCfg struct {
	// Capacity is the maximum number of entries the tier holds.
	// Inserting beyond it evicts exactly one entry chosen by the tier's policy.
	Capacity int `yaml:"capacity"`
}

type SessionCfg struct {
	// Capacity is the maximum number of unexpired entries.
	Capacity int `yaml:"capacity"`

	// TTL is measured from the last Set of a key. Example: "10h".
	TTL time.Duration `yaml:"ttl"`
}
