package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapnav/core"
	"github.com/katalvlaran/mapnav/metrics"
	"github.com/katalvlaran/mapnav/navigation"
	"github.com/katalvlaran/mapnav/server"
	"github.com/katalvlaran/mapnav/store"
)

// newServer serves two maps, lobby ⇒ floor1, over a fresh store.
func newServer(t *testing.T) (*server.Server, *metrics.Registry) {
	t.Helper()
	st := store.NewMemoryStore()
	_, err := st.PutDocument(core.MapDocument{
		ID:   "lobby",
		Name: "Lobby",
		Nodes: []core.NodeDocument{
			{ID: "door"}, {ID: "desk"},
			{ID: "stairs", Kind: "gateway", TargetMapID: "floor1", TargetNodeID: "landing"},
		},
		Adjacency: map[string][]core.EdgeDocument{
			"door": {{To: "desk", Weight: 4}, {To: "stairs", Weight: 10}},
			"desk": {{To: "stairs", Weight: 3}},
		},
	})
	require.NoError(t, err)
	_, err = st.PutDocument(core.MapDocument{
		ID:        "floor1",
		Name:      "First floor",
		Nodes:     []core.NodeDocument{{ID: "landing"}, {ID: "r101", Kind: "room"}},
		Adjacency: map[string][]core.EdgeDocument{"landing": {{To: "r101", Weight: 6}}},
	})
	require.NoError(t, err)

	reg := metrics.NewRegistry()
	nav := navigation.New(st)
	return server.New(nav, st, server.WithMetrics(reg)), reg
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNavigate_Success(t *testing.T) {
	srv, reg := newServer(t)
	rec := do(t, srv, http.MethodPost, "/api/navigation",
		`{"start_map_id":"lobby","start_node_id":"door","end_map_id":"floor1","end_node_id":"r101"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res navigation.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, []string{"door", "desk", "stairs"}, res.Segments[0].Path)
	assert.Equal(t, &core.Target{MapID: "floor1", NodeID: "landing"}, res.Segments[0].Transition)
	assert.Equal(t, 13.0, res.TotalDistance)
	assert.True(t, navigation.IsValid(res))

	assert.Equal(t, 1.0, testutil.ToFloat64(
		reg.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/navigation", "200")))
}

func TestNavigate_FailureStatus(t *testing.T) {
	srv, _ := newServer(t)
	cases := []struct {
		name, body string
		status     int
		kind       navigation.ErrorKind
	}{
		{"node not found", `{"start_map_id":"lobby","start_node_id":"roof","end_map_id":"floor1","end_node_id":"r101"}`,
			http.StatusNotFound, navigation.KindNodeNotFound},
		{"map not found", `{"start_map_id":"lobby","start_node_id":"door","end_map_id":"garage","end_node_id":"p1"}`,
			http.StatusNotFound, navigation.KindMapNotFound},
		{"no route", `{"start_map_id":"floor1","start_node_id":"landing","end_map_id":"lobby","end_node_id":"door"}`,
			http.StatusUnprocessableEntity, navigation.KindNoRouteBetweenMaps},
		{"missing field", `{"start_map_id":"lobby","end_map_id":"floor1","end_node_id":"r101"}`,
			http.StatusBadRequest, navigation.KindInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/navigation", tc.body)
			assert.Equal(t, tc.status, rec.Code)
			var res navigation.Result
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.False(t, res.Success)
			assert.Equal(t, tc.kind, res.Kind)
			assert.Empty(t, res.Segments)
		})
	}
}

func TestNavigate_BadBody(t *testing.T) {
	srv, _ := newServer(t)
	for _, body := range []string{"", "{", `{"start":"x"}`} {
		rec := do(t, srv, http.MethodPost, "/api/navigation", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestValidateEndpoint(t *testing.T) {
	srv, _ := newServer(t)
	rec := do(t, srv, http.MethodPost, "/api/navigation",
		`{"start_map_id":"lobby","start_node_id":"door","end_map_id":"floor1","end_node_id":"r101"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/navigation/validate", rec.Body.String())
	require.Equal(t, http.StatusOK, rec.Code)
	var out server.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out.Valid)
	assert.Empty(t, out.Reasons)

	var broken bytes.Buffer
	require.NoError(t, json.NewEncoder(&broken).Encode(navigation.Result{Success: true}))
	rec = do(t, srv, http.MethodPost, "/api/navigation/validate", broken.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.False(t, out.Valid)
	assert.NotEmpty(t, out.Reasons)
}

func TestMaps(t *testing.T) {
	srv, _ := newServer(t)

	rec := do(t, srv, http.MethodGet, "/api/maps", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list server.MapsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 2, list.Count)
	require.Len(t, list.Maps, 2)
	assert.Equal(t, "floor1", list.Maps[0].ID)
	assert.Equal(t, "lobby", list.Maps[1].ID)

	rec = do(t, srv, http.MethodGet, "/api/maps/lobby", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc core.MapDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Lobby", doc.Name)
	assert.Len(t, doc.Nodes, 3)

	rec = do(t, srv, http.MethodGet, "/api/maps/garage", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPathDistance(t *testing.T) {
	srv, _ := newServer(t)

	rec := do(t, srv, http.MethodGet, "/api/maps/lobby/distance?path=door,desk,stairs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out server.DistanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 7.0, out.Distance)
	assert.Len(t, out.Nodes, 3)

	rec = do(t, srv, http.MethodGet, "/api/maps/lobby/distance?path=door,ghost", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Zero(t, out.Distance)
	assert.Len(t, out.Nodes, 1)

	rec = do(t, srv, http.MethodGet, "/api/maps/lobby/distance", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newServer(t)

	rec := do(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mapnav_http_requests_total")
}

func TestMetricsRouteAbsentWithoutRegistry(t *testing.T) {
	st := store.NewMemoryStore()
	srv := server.New(navigation.New(st), st)
	rec := do(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newServer(t)
	rec := do(t, srv, http.MethodGet, "/api/navigation", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
