// File: types.go
// Role: Node, Edge, Target, document types and sentinel errors.
//
// Determinism:
//   - Documents keep author order; Map accessors return sorted views.

package core

import "errors"

// Sentinel errors for map construction and lookup.
var (
	// ErrNilMap indicates that a nil *Map was supplied.
	ErrNilMap = errors.New("core: map is nil")

	// ErrEmptyMapID indicates a map document without an id.
	ErrEmptyMapID = errors.New("core: map ID is empty")

	// ErrEmptyNodeID indicates a node (or edge endpoint) with an empty id.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates two nodes with the same id inside one map.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNegativeWeight indicates an edge whose weight is below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrUnknownKind indicates a node kind outside the supported set.
	ErrUnknownKind = errors.New("core: unknown node kind")

	// ErrMapNotFound is the sentinel map sources return for an unknown map id.
	ErrMapNotFound = errors.New("core: map not found")
)

// NodeKind classifies a node.
type NodeKind string

const (
	// KindWaypoint is a plain routing point (corridor, junction).
	KindWaypoint NodeKind = "waypoint"

	// KindRoom is a named destination.
	KindRoom NodeKind = "room"

	// KindGateway is a transition point into another map.
	KindGateway NodeKind = "gateway"
)

// Valid reports whether k is one of the known kinds.
func (k NodeKind) Valid() bool {
	switch k {
	case KindWaypoint, KindRoom, KindGateway:
		return true
	}
	return false
}

// Target names a node on some map: the far side of a gateway, or the place
// a route segment hands over to the next one.
type Target struct {
	MapID  string `json:"map_id" yaml:"map_id"`
	NodeID string `json:"node_id" yaml:"node_id"`
}

// Node is a point on a single map. Its ID is unique only within that map.
type Node struct {
	ID          string   `json:"id"`
	Kind        NodeKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`

	// gateway is non-nil only for well-formed gateway nodes.
	gateway *Target
}

// Gateway returns the node's gateway target. ok is false for every node that
// is not a valid gateway, including KindGateway nodes with an incomplete target.
func (n Node) Gateway() (t Target, ok bool) {
	if n.gateway == nil {
		return Target{}, false
	}
	return *n.gateway, true
}

// IsGateway is shorthand for the ok result of Gateway.
func (n Node) IsGateway() bool { return n.gateway != nil }

// Edge is a one-way weighted connection to node To within the same map.
type Edge struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// NodeDocument is the authored form of a node as stored by map sources.
// Target fields are only meaningful for gateway nodes.
type NodeDocument struct {
	ID           string `json:"id" yaml:"id" validate:"required"`
	Kind         string `json:"kind" yaml:"kind" validate:"omitempty,oneof=waypoint room gateway"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	TargetMapID  string `json:"target_map_id,omitempty" yaml:"target_map_id,omitempty"`
	TargetNodeID string `json:"target_node_id,omitempty" yaml:"target_node_id,omitempty"`
}

// EdgeDocument is the authored form of one outgoing edge.
type EdgeDocument struct {
	To     string  `json:"to" yaml:"to" validate:"required"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gte=0"`
}

// MapDocument is the authored form of a map: what a store persists and
// what NewMap consumes.
type MapDocument struct {
	ID        string                    `json:"id" yaml:"id" validate:"required"`
	Name      string                    `json:"name" yaml:"name"`
	Image     string                    `json:"image,omitempty" yaml:"image,omitempty"`
	Nodes     []NodeDocument            `json:"nodes" yaml:"nodes" validate:"dive"`
	Adjacency map[string][]EdgeDocument `json:"adjacency,omitempty" yaml:"adjacency,omitempty" validate:"dive,dive"`
}
