package tier

import (
	"container/list"
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/benbjohnson/clock"
	"sync"
	"time"
)

type ttlItem struct {
	key      Key
	value    any
	expireAt time.Time
	elem     *list.Element
}

// TTL expires every entry a fixed duration after its last Set.
// Expired entries are never returned; they are removed lazily by Get, Set and Len,
// or in batches by PurgeExpired. When the unexpired entries fill the capacity,
// the entry set furthest in the past is evicted.
// Entries are kept ordered by expiry, so a clock stepping backwards between two
// Sets cannot leave an expired entry behind a live one.
type TTL struct {
	sync.Mutex
	tier     model.Tier
	capacity int
	ttl      time.Duration
	clock    clock.Clock
	items    map[uint64]*ttlItem
	order    *list.List // front: the first to expire
	counters *counters
}

func NewTTL(tier model.Tier, capacity int, ttl time.Duration, clk clock.Clock) *TTL {
	capacity = normCapacity(capacity)
	if clk == nil {
		clk = clock.New()
	}
	return &TTL{
		tier:     tier,
		capacity: capacity,
		ttl:      ttl,
		clock:    clk,
		items:    make(map[uint64]*ttlItem, capacity),
		order:    list.New(),
		counters: newCounters(),
	}
}

func (s *TTL) Tier() model.Tier { return s.tier }

func (s *TTL) TTL() time.Duration { return s.ttl }

func (s *TTL) Set(key string, value any) {
	k := NewKey(key)
	now := s.clock.Now()

	s.Lock()
	defer s.Unlock()
	s.counters.sets.Add(1)

	if item, found := s.items[k.Value()]; found {
		if !item.key.IsTheSame(k) {
			// hash collision: the previous key is replaced
			s.counters.evictions.Add(1)
			item.key = k
		}
		item.value = value
		item.expireAt = now.Add(s.ttl)
		s.order.Remove(item.elem)
		s.pushUnlocked(item)
		return
	}

	if len(s.items) >= s.capacity {
		s.purgeExpiredUnlocked(now, -1)
	}
	if len(s.items) >= s.capacity {
		s.removeUnlocked(s.order.Front().Value.(*ttlItem))
		s.counters.evictions.Add(1)
	}

	item := &ttlItem{key: k, value: value, expireAt: now.Add(s.ttl)}
	s.pushUnlocked(item)
	s.items[k.Value()] = item
}

func (s *TTL) Get(key string) (value any, found bool) {
	k := NewKey(key)
	now := s.clock.Now()

	s.Lock()
	defer s.Unlock()

	item, found := s.items[k.Value()]
	if !found || !item.key.IsTheSame(k) {
		s.counters.misses.Add(1)
		return nil, false
	}
	if item.isExpired(now) {
		s.removeUnlocked(item)
		s.counters.expirations.Add(1)
		s.counters.misses.Add(1)
		return nil, false
	}
	s.counters.hits.Add(1)
	return item.value, true
}

func (s *TTL) Del(key string) bool {
	k := NewKey(key)

	s.Lock()
	defer s.Unlock()

	item, found := s.items[k.Value()]
	if !found || !item.key.IsTheSame(k) {
		return false
	}
	s.removeUnlocked(item)
	return true
}

// PurgeExpired removes up to limit expired entries (all of them when limit < 0)
// and returns how many were removed.
func (s *TTL) PurgeExpired(limit int) int64 {
	now := s.clock.Now()

	s.Lock()
	defer s.Unlock()
	return s.purgeExpiredUnlocked(now, limit)
}

func (s *TTL) Clear() int64 {
	s.Lock()
	defer s.Unlock()
	return s.ClearUnlocked()
}

func (s *TTL) ClearUnlocked() int64 {
	n := int64(len(s.items))
	clear(s.items)
	s.order.Init()
	return n
}

// Len returns the number of unexpired entries.
func (s *TTL) Len() int64 {
	now := s.clock.Now()

	s.Lock()
	defer s.Unlock()
	s.purgeExpiredUnlocked(now, -1)
	return int64(len(s.items))
}

func (s *TTL) Stats() model.TierStats {
	return stats(s.tier, s.Len(), s.capacity, s.counters)
}

// pushUnlocked links item in expiry order. The clock normally only moves forward,
// so the walk from the back stops at once.
func (s *TTL) pushUnlocked(item *ttlItem) {
	for el := s.order.Back(); el != nil; el = el.Prev() {
		if !item.expireAt.Before(el.Value.(*ttlItem).expireAt) {
			item.elem = s.order.InsertAfter(item, el)
			return
		}
	}
	item.elem = s.order.PushFront(item)
}

// purgeExpiredUnlocked walks from the front and stops at the first live entry.
func (s *TTL) purgeExpiredUnlocked(now time.Time, limit int) (removed int64) {
	for el := s.order.Front(); el != nil && (limit < 0 || removed < int64(limit)); el = s.order.Front() {
		item := el.Value.(*ttlItem)
		if !item.isExpired(now) {
			break
		}
		s.removeUnlocked(item)
		removed++
	}
	if removed > 0 {
		s.counters.expirations.Add(removed)
	}
	return removed
}

func (s *TTL) removeUnlocked(item *ttlItem) {
	s.order.Remove(item.elem)
	delete(s.items, item.key.Value())
}

func (i *ttlItem) isExpired(now time.Time) bool {
	return !now.Before(i.expireAt)
}
