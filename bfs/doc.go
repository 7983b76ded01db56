// Package bfs is the map-chain router: breadth-first search over the
// meta-graph of map-to-map gateway links.
//
// MapChain(mg, start, end) returns the fewest-hop ordered list of map ids
// from start to end. Meta-edges carry no weight, so hop order is optimal;
// the local cost inside each map plays no part in choosing the chain.
//
// Usage
//
//	chain, err := bfs.MapChain(mg, "campus", "floor3",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxHops(6),
//	    bfs.WithClosedMaps("east-wing"),
//	)
//
// Options
//
//   - WithContext(ctx):        cancellation, checked before each visit.
//   - WithMaxHops(n):          longest acceptable chain in gateway hops.
//   - WithClosedMaps(ids...):  maps the chain may not pass through or end on.
//   - WithOnVisit(fn):         observe each map as the search reaches it.
//
// Complexity (M = maps, L = meta-edges): O(M + L) time, O(M) memory.
package bfs
