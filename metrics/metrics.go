// Package metrics exposes Prometheus instrumentation for the status server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the server's Prometheus registry and instruments.
type Collector struct {
	reg *prometheus.Registry

	UpstreamFetches    prometheus.Counter
	UpstreamFetchErrs  prometheus.Counter
	UpstreamFetchTime  prometheus.Histogram
	SnapshotCacheHits  prometheus.Counter
	SnapshotCacheMiss  prometheus.Counter
	TripRequests       *prometheus.CounterVec // format label: json|text
	TripRequestErrs    prometheus.Counter
}

// NewCollector builds and registers all instruments on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		UpstreamFetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viastatus_upstream_fetches_total",
			Help: "Total train status fetches against the upstream.",
		}),
		UpstreamFetchErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viastatus_upstream_fetch_errors_total",
			Help: "Total failed train status fetches.",
		}),
		UpstreamFetchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "viastatus_upstream_fetch_duration_seconds",
			Help:    "Duration of upstream fetch plus normalization.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		SnapshotCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viastatus_snapshot_cache_hits_total",
			Help: "Trip snapshot cache hits.",
		}),
		SnapshotCacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viastatus_snapshot_cache_misses_total",
			Help: "Trip snapshot cache misses.",
		}),
		TripRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "viastatus_trip_requests_total",
			Help: "Trip status requests served.",
		}, []string{"format"}),
		TripRequestErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "viastatus_trip_request_errors_total",
			Help: "Trip status requests that ended in an error response.",
		}),
	}

	reg.MustRegister(
		c.UpstreamFetches, c.UpstreamFetchErrs, c.UpstreamFetchTime,
		c.SnapshotCacheHits, c.SnapshotCacheMiss,
		c.TripRequests, c.TripRequestErrs,
	)
	return c
}

// Handler serves the registry for the /metrics endpoint.
func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
