package bfs

import (
	"fmt"

	"github.com/katalvlaran/mapnav/metagraph"
)

// MapChain returns the fewest-hop sequence of map ids from start to end,
// both included. start == end yields []string{start} without looking at mg.
//
// Maps are taken off the frontier in hop order and, within one hop count,
// in the sorted order metagraph.Neighbors gives, so equal-length chains
// resolve the same way on every run. Each map is queued at most once.
//
// Errors: ErrNilMetaGraph, ErrOptionViolation, ErrMapNotFound (either id
// not a key), ErrNoRoute, or ctx.Err() when cancelled.
func MapChain(mg *metagraph.MetaGraph, start, end string, opts ...Option) ([]string, error) {
	if start == end {
		return []string{start}, nil
	}
	if mg == nil {
		return nil, ErrNilMetaGraph
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	for _, id := range [...]string{start, end} {
		if !mg.Has(id) {
			return nil, fmt.Errorf("%w: %q", ErrMapNotFound, id)
		}
	}

	hops := map[string]int{start: 0}
	cameFrom := make(map[string]string)
	frontier := []string{start}

	for head := 0; head < len(frontier); head++ {
		if err := cfg.ctx.Err(); err != nil {
			return nil, err
		}
		cur := frontier[head]
		cfg.onVisit(cur, hops[cur])
		if cur == end {
			return trace(cameFrom, start, end), nil
		}
		if cfg.maxHops > 0 && hops[cur] >= cfg.maxHops {
			continue
		}
		for _, next := range mg.Neighbors(cur) {
			if _, queued := hops[next]; queued || !mg.Has(next) || cfg.isClosed(next) {
				continue
			}
			hops[next] = hops[cur] + 1
			cameFrom[next] = cur
			frontier = append(frontier, next)
		}
	}
	return nil, fmt.Errorf("%w: %q → %q", ErrNoRoute, start, end)
}

// trace walks cameFrom back from end and returns the chain start-first.
func trace(cameFrom map[string]string, start, end string) []string {
	chain := []string{end}
	for cur := end; cur != start; {
		cur = cameFrom[cur]
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
