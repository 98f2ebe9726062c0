package config

import "github.com/Borislavv/go-tiered-cache/model"

const DefaultInlineMaxRows = 20

type PayloadCfg struct {
	// InlineMaxRows is the largest row count sent inline (store type "local").
	// Bigger payloads are put into the cache and only their key is passed on.
	// A negative value stores every payload in the cache.
	InlineMaxRows int `yaml:"inline_max_rows"`

	// Tier receives stashed payloads. Defaults to "hot".
	Tier model.Tier `yaml:"tier"`
}
