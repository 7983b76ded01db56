// Package dijkstra is the local router: it computes the cheapest walk
// between two nodes of one map.
//
// Overview:
//
//   - ShortestPath(m, start, end) returns the full node-id path, endpoints
//     included. start == end short-circuits to []string{start}.
//   - Distances(m, start) returns the settled distance field, mostly for
//     diagnostics and tests.
//   - Edge weights are costs, not necessarily lengths, and must be ≥ 0
//     (core.NewMap rejects negatives).
//
// Options:
//
//   - WithMaxDistance(x): never settle nodes farther than x.
//   - WithInfEdgeThreshold(t): treat edges with weight ≥ t as walls.
//   - WithOnSettle(fn): observe settle order.
//
// Error handling (sentinel errors):
//
//   - ErrNilMap:          nil map.
//   - ErrNodeNotFound:    start or end missing from the map's node set.
//   - ErrNoPath:          end unreachable from start.
//   - ErrOptionViolation: invalid option value.
//
// Errors are wrapped with the offending node ids and map id; match them
// with errors.Is.
package dijkstra
