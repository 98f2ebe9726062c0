// Package metrics exposes tier counters as Prometheus metrics.
package metrics

import (
	"github.com/Borislavv/go-tiered-cache/model"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tieredcache"

// Source is read on every scrape.
type Source interface {
	Metrics() []model.TierStats
	Fallbacks() int64
}

// Collector reads counters at scrape time, so the hot path only touches atomics.
type Collector struct {
	src Source

	entries     *prometheus.Desc
	capacity    *prometheus.Desc
	hits        *prometheus.Desc
	misses      *prometheus.Desc
	sets        *prometheus.Desc
	evictions   *prometheus.Desc
	expirations *prometheus.Desc
	fallbacks   *prometheus.Desc
}

func NewCollector(src Source) *Collector {
	tierLabel := []string{"tier"}
	return &Collector{
		src:         src,
		entries:     prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "entries"), "Number of live entries per tier.", tierLabel, nil),
		capacity:    prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "capacity"), "Maximum number of entries per tier.", tierLabel, nil),
		hits:        prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "hits_total"), "Total number of cache hits per tier.", tierLabel, nil),
		misses:      prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "misses_total"), "Total number of cache misses per tier.", tierLabel, nil),
		sets:        prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "sets_total"), "Total number of writes per tier.", tierLabel, nil),
		evictions:   prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "evictions_total"), "Total number of entries evicted by the tier policy.", tierLabel, nil),
		expirations: prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "expirations_total"), "Total number of entries removed after their ttl.", tierLabel, nil),
		fallbacks:   prometheus.NewDesc(prometheus.BuildFQName(namespace, "", "tier_fallbacks_total"), "Total number of calls with an unknown tier served by the hot tier.", nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.capacity
	ch <- c.hits
	ch <- c.misses
	ch <- c.sets
	ch <- c.evictions
	ch <- c.expirations
	ch <- c.fallbacks
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.src.Metrics() {
		tier := s.Tier.String()
		ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Entries), tier)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity), tier)
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits), tier)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses), tier)
		ch <- prometheus.MustNewConstMetric(c.sets, prometheus.CounterValue, float64(s.Sets), tier)
		ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions), tier)
		ch <- prometheus.MustNewConstMetric(c.expirations, prometheus.CounterValue, float64(s.Expirations), tier)
	}
	ch <- prometheus.MustNewConstMetric(c.fallbacks, prometheus.CounterValue, float64(c.src.Fallbacks()))
}
