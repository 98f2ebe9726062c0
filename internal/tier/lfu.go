package tier

import (
	"container/heap"
	"github.com/Borislavv/go-tiered-cache/model"
	"sync"
)

type lfuItem struct {
	key   Key
	value any
	freq  uint64 // incremented on every Set and on every Get hit
	seq   uint64 // insertion order, the tie-break between equal frequencies
	index int    // position in lfuHeap
}

// lfuHeap is a min-heap by (freq, seq): the root is the next victim.
type lfuHeap []*lfuItem

func (h lfuHeap) Len() int { return len(h) }

func (h lfuHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}

func (h lfuHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *lfuHeap) Push(x any) {
	item := x.(*lfuItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *lfuHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// LFU evicts the least frequently used entry once capacity is reached.
// Among entries with the same frequency the oldest insertion goes first;
// re-setting an existing key keeps its insertion position.
type LFU struct {
	sync.Mutex
	tier     model.Tier
	capacity int
	seq      uint64
	items    map[uint64]*lfuItem
	order    lfuHeap
	counters *counters
}

func NewLFU(tier model.Tier, capacity int) *LFU {
	capacity = normCapacity(capacity)
	return &LFU{
		tier:     tier,
		capacity: capacity,
		items:    make(map[uint64]*lfuItem, capacity),
		order:    make(lfuHeap, 0, capacity),
		counters: newCounters(),
	}
}

func (s *LFU) Tier() model.Tier { return s.tier }

func (s *LFU) Set(key string, value any) {
	k := NewKey(key)

	s.Lock()
	defer s.Unlock()
	s.counters.sets.Add(1)

	if item, found := s.items[k.Value()]; found {
		if item.key.IsTheSame(k) {
			item.value = value
			item.freq++
		} else {
			// hash collision: the previous key is replaced by a fresh entry
			s.counters.evictions.Add(1)
			s.seq++
			item.key, item.value, item.freq, item.seq = k, value, 1, s.seq
		}
		heap.Fix(&s.order, item.index)
		return
	}

	if len(s.items) >= s.capacity {
		victim := heap.Pop(&s.order).(*lfuItem)
		delete(s.items, victim.key.Value())
		s.counters.evictions.Add(1)
	}

	s.seq++
	item := &lfuItem{key: k, value: value, freq: 1, seq: s.seq}
	s.items[k.Value()] = item
	heap.Push(&s.order, item)
}

func (s *LFU) Get(key string) (value any, found bool) {
	k := NewKey(key)

	s.Lock()
	defer s.Unlock()

	item, found := s.items[k.Value()]
	if !found || !item.key.IsTheSame(k) {
		s.counters.misses.Add(1)
		return nil, false
	}
	item.freq++
	heap.Fix(&s.order, item.index)
	s.counters.hits.Add(1)
	return item.value, true
}

func (s *LFU) Del(key string) bool {
	k := NewKey(key)

	s.Lock()
	defer s.Unlock()

	item, found := s.items[k.Value()]
	if !found || !item.key.IsTheSame(k) {
		return false
	}
	heap.Remove(&s.order, item.index)
	delete(s.items, k.Value())
	return true
}

// Frequency returns the access count of key, or zero when absent. It does not count as an access.
func (s *LFU) Frequency(key string) uint64 {
	k := NewKey(key)

	s.Lock()
	defer s.Unlock()

	if item, found := s.items[k.Value()]; found && item.key.IsTheSame(k) {
		return item.freq
	}
	return 0
}

func (s *LFU) Clear() int64 {
	s.Lock()
	defer s.Unlock()
	return s.ClearUnlocked()
}

func (s *LFU) ClearUnlocked() int64 {
	n := int64(len(s.items))
	clear(s.items)
	clear(s.order)
	s.order = s.order[:0]
	return n
}

func (s *LFU) Len() int64 {
	s.Lock()
	defer s.Unlock()
	return int64(len(s.items))
}

func (s *LFU) Stats() model.TierStats {
	return stats(s.tier, s.Len(), s.capacity, s.counters)
}
