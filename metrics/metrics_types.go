package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the navigation service
type Registry struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Navigation Metrics
	NavigationRequestsTotal *prometheus.CounterVec
	NavigationDuration      prometheus.Histogram
	NavigationChainLength   prometheus.Histogram
	NavigationPathNodes     prometheus.Histogram

	// Store Metrics
	StoreMapsTotal      prometheus.Gauge
	StoreLookupsTotal   *prometheus.CounterVec
	StoreSnapshotBuilds prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initHTTPMetrics()
	r.initNavigationMetrics()
	r.initStoreMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
