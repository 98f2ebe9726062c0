package cache

import "sync/atomic"

type counters struct {
	fallbacks atomic.Int64 // calls with an unknown tier served by the hot store
}

func newCounters() *counters {
	return &counters{}
}
