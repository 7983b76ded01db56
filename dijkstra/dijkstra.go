// Package dijkstra finds minimum-weight paths between two nodes of a single
// map using Dijkstra's algorithm with a lazy decrease-key min-heap.
//
// Complexity:
//
//   - Time:  O((V + E) log V), stopping early once the end node is settled.
//   - Space: O(V + E).
//
// Notes on implementation choices:
//
//   - Heap ties are broken by node id so repeated runs settle nodes in the
//     same order and return the same path.
//   - Edges leading to ids absent from the map's node set are skipped.
//   - The input map is read-only here.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mapnav/core"
)

// ShortestPath returns the node ids of a minimum-total-weight path from
// start to end on m, both endpoints included.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMap).
//  2. options must be valid (ErrOptionViolation).
//  3. start and end must be in m's node set (ErrNodeNotFound).
//
// If start == end the result is []string{start} and no search runs. The
// existence check comes first, so an unknown id is never echoed back as a
// one-node path.
// If end is never settled the call fails with ErrNoPath.
func ShortestPath(m *core.Map, start, end string, opts ...Option) ([]string, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	for _, id := range [...]string{start, end} {
		if !m.HasNode(id) {
			return nil, fmt.Errorf("%w: node %q in map %q", ErrNodeNotFound, id, m.ID())
		}
	}
	if start == end {
		return []string{start}, nil
	}

	r := newRunner(m, cfg)
	r.run(start, end)

	path := r.pathTo(end)
	if len(path) == 0 || path[0] != start {
		return nil, fmt.Errorf("%w: %q → %q in map %q", ErrNoPath, start, end, m.ID())
	}
	return path, nil
}

// Distances returns the settled distance of every node reachable from
// start (unreachable nodes are absent). Useful for diagnostics and for
// checking ShortestPath against the full distance field.
func Distances(m *core.Map, start string, opts ...Option) (map[string]float64, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !m.HasNode(start) {
		return nil, fmt.Errorf("%w: node %q in map %q", ErrNodeNotFound, start, m.ID())
	}

	r := newRunner(m, cfg)
	r.run(start, "")

	out := make(map[string]float64, len(r.visited))
	for id := range r.visited {
		out[id] = r.dist[id]
	}
	return out, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	m       *core.Map
	options Options
	dist    map[string]float64 // node ID → best-known distance from start
	prev    map[string]string  // node ID → predecessor on the best path
	visited map[string]bool    // settled nodes
	pq      nodePQ
}

func newRunner(m *core.Map, cfg Options) *runner {
	ids := m.NodeIDs()
	r := &runner{
		m:       m,
		options: cfg,
		dist:    make(map[string]float64, len(ids)),
		prev:    make(map[string]string, len(ids)),
		visited: make(map[string]bool, len(ids)),
		pq:      make(nodePQ, 0, len(ids)),
	}
	for _, id := range ids {
		r.dist[id] = math.Inf(1)
	}
	return r
}

// run settles nodes in increasing distance order until the heap drains,
// MaxDistance is exceeded, or end (if non-empty) is settled.
func (r *runner) run(start, end string) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if r.options.OnSettle != nil {
			r.options.OnSettle(u, item.dist)
		}
		if u == end {
			return
		}
		r.relax(u)
	}
}

// relax improves neighbours of the settled node u. Only strictly shorter
// paths replace an existing predecessor.
func (r *runner) relax(u string) {
	for _, e := range r.m.Edges(u) {
		best, known := r.dist[e.To]
		if !known || r.visited[e.To] {
			continue
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		nd := r.dist[u] + e.Weight
		if nd > r.options.MaxDistance || nd >= best {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}
}

// pathTo walks predecessor pointers back from end. The first element is the
// start node only if end was reached.
func (r *runner) pathTo(end string) []string {
	var rev []string
	seen := make(map[string]bool)
	for cur := end; cur != ""; cur = r.prev[cur] {
		if seen[cur] {
			break
		}
		seen[cur] = true
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
