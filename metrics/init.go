package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initHTTPMetrics() {
	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapnav_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mapnav_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
}

func (r *Registry) initNavigationMetrics() {
	r.NavigationRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapnav_navigation_requests_total",
			Help: "Total number of navigation requests by outcome",
		},
		[]string{"status", "kind"},
	)

	r.NavigationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mapnav_navigation_duration_seconds",
			Help:    "Navigation request duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	r.NavigationChainLength = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mapnav_navigation_chain_length",
			Help:    "Number of maps traversed by successful routes",
			Buckets: []float64{1, 2, 3, 4, 6, 8, 12},
		},
	)

	r.NavigationPathNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mapnav_navigation_path_nodes",
			Help:    "Total nodes across all segments of successful routes",
			Buckets: []float64{2, 5, 10, 25, 50, 100, 250},
		},
	)
}

func (r *Registry) initStoreMetrics() {
	r.StoreMapsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "mapnav_store_maps_total",
			Help: "Number of maps currently held by the store",
		},
	)

	r.StoreLookupsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapnav_store_lookups_total",
			Help: "Store map lookups by result (hit, miss)",
		},
		[]string{"result"},
	)

	r.StoreSnapshotBuilds = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "mapnav_store_snapshot_builds_total",
			Help: "Number of times the all-maps snapshot was rebuilt after invalidation",
		},
	)
}
