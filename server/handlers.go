package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/mapnav/core"
	"github.com/katalvlaran/mapnav/navigation"
	"github.com/katalvlaran/mapnav/store"
)

// ErrorResponse is the body of every non-navigation error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ValidationResponse is the body of POST /api/navigation/validate.
type ValidationResponse struct {
	Valid   bool     `json:"valid"`
	Reasons []string `json:"reasons"`
}

// MapsResponse is the body of GET /api/maps.
type MapsResponse struct {
	Maps  []store.Summary `json:"maps"`
	Count int             `json:"count"`
}

// DistanceResponse is the body of GET /api/maps/{id}/distance.
type DistanceResponse struct {
	MapID    string      `json:"map_id"`
	Path     []string    `json:"path"`
	Distance float64     `json:"distance"`
	Nodes    []core.Node `json:"nodes"`
}

// kindStatus maps a failure kind to the HTTP status of its response.
var kindStatus = map[navigation.ErrorKind]int{
	navigation.KindInvalidInput:       http.StatusBadRequest,
	navigation.KindMapNotFound:        http.StatusNotFound,
	navigation.KindNodeNotFound:       http.StatusNotFound,
	navigation.KindNoPathFound:        http.StatusUnprocessableEntity,
	navigation.KindNoRouteBetweenMaps: http.StatusUnprocessableEntity,
	navigation.KindGatewayNotFound:    http.StatusUnprocessableEntity,
	navigation.KindInternal:           http.StatusInternalServerError,
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req navigation.Request
	if err := s.decode(w, r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res := s.nav.Generate(r.Context(), req)
	status := http.StatusOK
	if !res.Success {
		status = kindStatus[res.Kind]
		if status == 0 {
			status = http.StatusInternalServerError
		}
	}
	s.respondJSON(w, status, res)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var res navigation.Result
	if err := s.decode(w, r, &res); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid result body: "+err.Error())
		return
	}
	reasons := navigation.Validate(res)
	if reasons == nil {
		reasons = []string{}
	}
	s.respondJSON(w, http.StatusOK, ValidationResponse{Valid: len(reasons) == 0, Reasons: reasons})
}

func (s *Server) handleListMaps(w http.ResponseWriter, _ *http.Request) {
	maps := s.catalog.List()
	s.respondJSON(w, http.StatusOK, MapsResponse{Maps: maps, Count: len(maps)})
}

func (s *Server) handleGetMap(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, m.Document())
}

func (s *Server) handlePathDistance(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(w, r)
	if !ok {
		return
	}
	raw := r.URL.Query().Get("path")
	if raw == "" {
		s.respondError(w, http.StatusBadRequest, "query parameter path is required")
		return
	}
	path := strings.Split(raw, ",")
	for i := range path {
		path[i] = strings.TrimSpace(path[i])
	}
	s.respondJSON(w, http.StatusOK, DistanceResponse{
		MapID:    m.ID(),
		Path:     path,
		Distance: core.PathDistance(m, path),
		Nodes:    core.PathNodes(m, path),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"maps":   len(s.catalog.List()),
	})
}

// lookup resolves the {id} route variable, answering 404 itself on a miss.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*core.Map, bool) {
	id := mux.Vars(r)["id"]
	m, err := s.catalog.GetMap(r.Context(), id)
	switch {
	case err == nil:
		return m, true
	case errors.Is(err, core.ErrMapNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("map lookup failed", "map", id, "error", err)
		s.respondError(w, http.StatusInternalServerError, "map lookup failed")
	}
	return nil, false
}

// decode reads one JSON value from a size-limited body.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
