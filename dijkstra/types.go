// Package dijkstra defines configuration options and sentinel errors for
// single-map shortest-path search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilMap indicates that a nil *core.Map was passed.
	ErrNilMap = errors.New("dijkstra: map is nil")

	// ErrNodeNotFound indicates that the start or end id is absent from the map.
	ErrNodeNotFound = errors.New("dijkstra: node not found in map")

	// ErrNoPath indicates that the end node cannot be reached from the start node.
	ErrNoPath = errors.New("dijkstra: no path between nodes")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures ShortestPath.
//
// MaxDistance      – stop exploring beyond this distance. Must be ≥ 0.
//
//	Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no walls).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64

	// OnSettle, if set, is called each time a node's distance becomes final.
	OnSettle func(id string, dist float64)

	err error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no walls.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithMaxDistance caps exploration: nodes farther than max from the start
// are never settled. A negative max is recorded and surfaced as
// ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as a wall
// (a closed door, an out-of-service escalator).
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%g)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers a callback invoked when a node is settled.
func WithOnSettle(fn func(id string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
