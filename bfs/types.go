package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by MapChain.
var (
	// ErrNilMetaGraph is returned when no meta-graph is supplied.
	ErrNilMetaGraph = errors.New("bfs: meta-graph is nil")

	// ErrMapNotFound is returned when the start or end map id is not a key
	// of the meta-graph.
	ErrMapNotFound = errors.New("bfs: map not found")

	// ErrNoRoute is returned when the search runs out of maps before
	// reaching the end map.
	ErrNoRoute = errors.New("bfs: no route between maps")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option")
)

// Option tunes a chain search. An invalid value is remembered and reported
// by MapChain as ErrOptionViolation before any map is visited.
type Option func(*searchConfig)

type searchConfig struct {
	ctx     context.Context
	maxHops int                 // 0 = unlimited
	closed  map[string]struct{} // maps the chain may not enter
	onVisit func(mapID string, hops int)
	err     error
}

func defaultConfig() searchConfig {
	return searchConfig{
		ctx:     context.Background(),
		onVisit: func(string, int) {},
	}
}

func (c *searchConfig) isClosed(mapID string) bool {
	_, ok := c.closed[mapID]
	return ok
}

// WithContext aborts the search with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(c *searchConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMaxHops rejects chains longer than n gateway hops. Zero means no
// limit; a negative n is an ErrOptionViolation.
func WithMaxHops(n int) Option {
	return func(c *searchConfig) {
		if n < 0 {
			c.err = fmt.Errorf("%w: max hops must not be negative (%d)", ErrOptionViolation, n)
			return
		}
		c.maxHops = n
	}
}

// WithClosedMaps keeps the chain out of the given maps, e.g. a building
// shut for maintenance. The start map is exempt: a route may always leave
// the map it begins on. A closed end map therefore yields ErrNoRoute.
func WithClosedMaps(ids ...string) Option {
	return func(c *searchConfig) {
		for _, id := range ids {
			if id == "" {
				c.err = fmt.Errorf("%w: empty closed map id", ErrOptionViolation)
				return
			}
			if c.closed == nil {
				c.closed = make(map[string]struct{}, len(ids))
			}
			c.closed[id] = struct{}{}
		}
	}
}

// WithOnVisit calls fn for every map the search takes off its frontier,
// with that map's hop count from the start.
func WithOnVisit(fn func(mapID string, hops int)) Option {
	return func(c *searchConfig) {
		if fn != nil {
			c.onVisit = fn
		}
	}
}
