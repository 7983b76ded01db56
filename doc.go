// Package mapnav finds routes across a set of connected maps: the floors of
// a building, the buildings of a campus, or any other collection of graphs
// linked by gateway nodes.
//
// A route is found in two tiers. The maps are first treated as nodes of a
// meta-graph, linked whenever one map holds a gateway into another, and
// the fewest-hop chain of maps is found by breadth-first search. Each map
// of the chain is then walked with Dijkstra: on every map but the last the
// walk ends at the cheapest reachable gateway toward the next map, and on
// the last map it ends at the destination.
//
// Packages:
//
//	core/        Map, Node, Edge and gateway targets; map documents
//	dijkstra/    single-map shortest paths
//	metagraph/   map-to-map links derived from gateways
//	bfs/         fewest-hop map chains over the meta-graph
//	gateway/     cheapest exit gateway toward a neighbouring map
//	navigation/  route assembly, failure kinds, result validation
//	store/       in-memory map store; YAML/JSON map documents
//	metrics/     Prometheus instrumentation
//	config/      service configuration
//	server/      HTTP API
//	cmd/mapnav   the service binary
//
// Library packages never log and never panic on bad input; they return
// package-prefixed sentinel errors wrapped with context.
package mapnav
