package tier

import (
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"sync"
)

type lruItem struct {
	key   Key
	value any
}

// LRU evicts the least recently used entry once capacity is reached.
// Both Get and Set move a key to the most recently used position.
type LRU struct {
	sync.Mutex
	tier     model.Tier
	capacity int
	items    *simplelru.LRU[uint64, lruItem]
	counters *counters
}

func NewLRU(tier model.Tier, capacity int) *LRU {
	capacity = normCapacity(capacity)
	// NewLRU fails only for a non-positive size.
	items, _ := simplelru.NewLRU[uint64, lruItem](capacity, nil)
	return &LRU{
		tier:     tier,
		capacity: capacity,
		items:    items,
		counters: newCounters(),
	}
}

func (s *LRU) Tier() model.Tier { return s.tier }

func (s *LRU) Set(key string, value any) {
	k := NewKey(key)

	s.Lock()
	if old, found := s.items.Peek(k.Value()); found && !old.key.IsTheSame(k) {
		// hash collision: the previous key is replaced
		s.counters.evictions.Add(1)
	}
	evicted := s.items.Add(k.Value(), lruItem{key: k, value: value})
	s.Unlock()

	s.counters.sets.Add(1)
	if evicted {
		s.counters.evictions.Add(1)
	}
}

func (s *LRU) Get(key string) (value any, found bool) {
	k := NewKey(key)

	s.Lock()
	item, found := s.items.Get(k.Value())
	s.Unlock()

	if !found || !item.key.IsTheSame(k) {
		s.counters.misses.Add(1)
		return nil, false
	}
	s.counters.hits.Add(1)
	return item.value, true
}

func (s *LRU) Del(key string) bool {
	k := NewKey(key)

	s.Lock()
	defer s.Unlock()

	item, found := s.items.Peek(k.Value())
	if !found || !item.key.IsTheSame(k) {
		return false
	}
	return s.items.Remove(k.Value())
}

func (s *LRU) Clear() int64 {
	s.Lock()
	defer s.Unlock()
	return s.ClearUnlocked()
}

func (s *LRU) ClearUnlocked() int64 {
	n := int64(s.items.Len())
	s.items.Purge()
	return n
}

func (s *LRU) Len() int64 {
	s.Lock()
	defer s.Unlock()
	return int64(s.items.Len())
}

func (s *LRU) Stats() model.TierStats {
	return stats(s.tier, s.Len(), s.capacity, s.counters)
}
