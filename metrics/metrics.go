package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Every Record*/Set* method is a no-op on a nil *Registry so that library
// packages can take an optional registry without branching.

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordNavigation records one navigation request. kind is empty on success.
func (r *Registry) RecordNavigation(kind string, duration time.Duration, maps, nodes int) {
	if r == nil {
		return
	}
	status := "success"
	if kind != "" {
		status = "failure"
	}
	r.NavigationRequestsTotal.WithLabelValues(status, kind).Inc()
	r.NavigationDuration.Observe(duration.Seconds())
	if kind == "" {
		r.NavigationChainLength.Observe(float64(maps))
		r.NavigationPathNodes.Observe(float64(nodes))
	}
}

// RecordStoreLookup counts a single-map lookup as a hit or a miss.
func (r *Registry) RecordStoreLookup(hit bool) {
	if r == nil {
		return
	}
	if hit {
		r.StoreLookupsTotal.WithLabelValues("hit").Inc()
	} else {
		r.StoreLookupsTotal.WithLabelValues("miss").Inc()
	}
}

// RecordSnapshotBuild counts a rebuild of the all-maps snapshot.
func (r *Registry) RecordSnapshotBuild() {
	if r == nil {
		return
	}
	r.StoreSnapshotBuilds.Inc()
}

// SetStoredMaps sets the number of maps held by the store.
func (r *Registry) SetStoredMaps(n int) {
	if r == nil {
		return
	}
	r.StoreMapsTotal.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
