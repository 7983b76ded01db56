// Package navigation assembles routes that may cross several maps.
//
// A request names a start (map, node) and an end (map, node). The Navigator
// resolves it in four steps:
//
//  1. Build the meta-graph of the maps held by the MapSource.
//  2. Find the shortest map chain with bfs.MapChain (fewest hops).
//  3. On every map but the last, pick the cheapest reachable gateway toward
//     the next map with gateway.Select; the gateway's target node becomes
//     the entry node of the next map.
//  4. On the last map, route from the entry node to the end node with
//     dijkstra.ShortestPath.
//
// Each map contributes one Segment. A Segment's path ends on the gateway
// node and the next Segment's path starts on that gateway's target node.
// Chain choice is by hop count only: a longer chain that would be cheaper
// in summed weight is never considered.
//
// Generate never returns an error. Failures come back in the Result with
// Success=false, an ErrorKind and a message, and no segments. Assemble
// exposes the raw pipeline with Go errors for callers that want them;
// Classify converts those errors to kinds.
//
// Validate checks the structural consistency of a successful Result against
// its Request.
package navigation
