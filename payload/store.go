// Package payload hands bulky row sets from a producer stage to a renderer.
// Small payloads travel inline in model.DataMeta; large ones are put into the
// cache and only their key travels.
package payload

import (
	"github.com/Borislavv/go-tiered-cache/config"
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/google/uuid"
)

// Cacher is the part of the cache the hand-off needs.
type Cacher interface {
	Set(key string, value any, tier model.Tier)
	Get(key string, tier model.Tier) (value any, found bool)
}

type Store struct {
	cache         Cacher
	tier          model.Tier
	inlineMaxRows int
	newID         func() string
}

func New(cache Cacher, cfg config.PayloadCfg) *Store {
	tier := cfg.Tier
	if tier == "" {
		tier = model.Hot
	}
	return &Store{
		cache:         cache,
		tier:          tier,
		inlineMaxRows: cfg.InlineMaxRows,
		newID:         uuid.NewString,
	}
}

// Key returns the cache key of a stored payload id.
func Key(storeKey string) string {
	return model.BuildKey(model.KeyPayloadData, storeKey)
}

// Stash decides where rows live and returns the record to pass downstream.
func (s *Store) Stash(rows []map[string]any) model.DataMeta {
	meta := model.DataMeta{StoreKey: s.newID(), RowCount: len(rows)}
	if s.inlineMaxRows >= 0 && len(rows) <= s.inlineMaxRows {
		meta.StoreType = model.StoreLocal
		meta.Data = rows
		return meta
	}
	meta.StoreType = model.StoreMemory
	s.cache.Set(Key(meta.StoreKey), rows, s.tier)
	return meta
}

// Fetch resolves the rows behind meta. An unknown store type, inline rows that do
// not match RowCount, a missing or expired entry, or a value of another type all
// mean "no data".
func (s *Store) Fetch(meta model.DataMeta) ([]map[string]any, bool) {
	switch meta.StoreType {
	case model.StoreLocal:
		// an empty row set loses Data on the way through JSON; RowCount still tells
		return meta.Data, len(meta.Data) == meta.RowCount
	case model.StoreMemory:
		if meta.StoreKey == "" {
			return nil, false
		}
		v, found := s.cache.Get(Key(meta.StoreKey), s.tier)
		if !found {
			return nil, false
		}
		rows, ok := v.([]map[string]any)
		return rows, ok
	default:
		return nil, false
	}
}
