package navigation

import (
	"context"
	"time"

	"github.com/katalvlaran/mapnav/core"
)

// MapSource is the read side of a map store. Implementations must return
// an error wrapping core.ErrMapNotFound for unknown ids.
type MapSource interface {
	GetMap(ctx context.Context, id string) (*core.Map, error)
	AllMaps(ctx context.Context) ([]*core.Map, error)
}

// ErrorKind classifies an expected failure.
type ErrorKind string

const (
	KindMapNotFound        ErrorKind = "MapNotFound"
	KindNodeNotFound       ErrorKind = "NodeNotFound"
	KindNoPathFound        ErrorKind = "NoPathFound"
	KindNoRouteBetweenMaps ErrorKind = "NoRouteBetweenMaps"
	KindGatewayNotFound    ErrorKind = "GatewayNotFound"
	KindInvalidInput       ErrorKind = "InvalidInput"
	// KindInternal covers everything unanticipated: collaborator failures,
	// cancellation, recovered panics.
	KindInternal ErrorKind = "Internal"
)

// Request names the two ends of a route.
type Request struct {
	StartMapID  string `json:"start_map_id" validate:"required"`
	StartNodeID string `json:"start_node_id" validate:"required"`
	EndMapID    string `json:"end_map_id" validate:"required"`
	EndNodeID   string `json:"end_node_id" validate:"required"`
}

// Segment is one map's worth of a route. Transition is nil on the final
// segment and otherwise names where the next segment begins.
type Segment struct {
	MapID      string       `json:"map_id"`
	Path       []string     `json:"path"`
	Distance   float64      `json:"distance"`
	Transition *core.Target `json:"transition,omitempty"`
}

// Result is the outcome of one navigation request. Callers must check
// Success before trusting Segments; a failed Result carries no segments.
type Result struct {
	Success   bool      `json:"success"`
	Kind      ErrorKind `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	RequestID string    `json:"request_id"`
	Request   Request   `json:"request"`

	// TotalMaps is the chain length.
	TotalMaps int `json:"total_maps"`
	// TotalNodes sums every segment's path length. A transition node shared
	// by two consecutive segments is counted in both.
	TotalNodes    int       `json:"total_nodes"`
	TotalDistance float64   `json:"total_distance"`
	Segments      []Segment `json:"segments,omitempty"`

	Elapsed time.Duration `json:"elapsed_ns"`
}
