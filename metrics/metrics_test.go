package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.NavigationRequestsTotal)
	assert.NotNil(t, r.StoreLookupsTotal)
	assert.NotNil(t, r.GetPrometheusRegistry())
}

func TestNewRegistry_Independent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.RecordStoreLookup(true)

	assert.NotSame(t, a.GetPrometheusRegistry(), b.GetPrometheusRegistry())
	assert.Equal(t, 1.0, testutil.ToFloat64(a.StoreLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.StoreLookupsTotal.WithLabelValues("hit")))
}

func TestRecordNavigation(t *testing.T) {
	r := NewRegistry()

	r.RecordNavigation("", 2*time.Millisecond, 3, 12)
	r.RecordNavigation("", time.Millisecond, 1, 4)
	r.RecordNavigation("NodeNotFound", time.Millisecond, 0, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.NavigationRequestsTotal.WithLabelValues("success", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.NavigationRequestsTotal.WithLabelValues("failure", "NodeNotFound")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.NavigationChainLength))
}

func TestRecordStore(t *testing.T) {
	r := NewRegistry()

	r.RecordStoreLookup(true)
	r.RecordStoreLookup(true)
	r.RecordStoreLookup(false)
	r.RecordSnapshotBuild()
	r.SetStoredMaps(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.StoreLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StoreLookupsTotal.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StoreSnapshotBuilds))
	assert.Equal(t, 7.0, testutil.ToFloat64(r.StoreMapsTotal))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.RecordHTTPRequest("GET", "/", "200", time.Millisecond)
		r.RecordNavigation("", time.Millisecond, 1, 1)
		r.RecordStoreLookup(true)
		r.RecordSnapshotBuild()
		r.SetStoredMaps(1)
	})
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordHTTPRequest("POST", "/api/navigation", "200", 10*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `mapnav_http_requests_total{method="POST",route="/api/navigation",status="200"} 1`), body)
}
