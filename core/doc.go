// Package core defines the map model every navigation algorithm works on:
// Node, Edge, Map and the derived gateway relation between maps.
//
// A Map is an immutable snapshot of one independently authored 2-D floor
// plan: a set of nodes keyed by id and a directed, weighted adjacency
// structure. Maps are built once from a MapDocument via NewMap and never
// mutated afterwards, so any number of goroutines may read the same Map
// concurrently without locking.
//
// Node classification:
//
//	– KindWaypoint   plain corridor point
//	– KindRoom       named destination
//	– KindGateway    transition point into another map
//
// The gateway relation is decided once, in NewMap. A node is a valid
// gateway iff its kind is KindGateway AND both target fields are non-empty.
// Node.Gateway() reports the (Target, bool) variant; malformed gateway nodes
// report false and are treated as plain nodes by every algorithm.
//
// Edges:
//
//	adjacency[from] = []Edge{{To: to, Weight: w}, ...}
//
// Edges are one-way. An A→B edge says nothing about B→A. A missing key in
// the adjacency means the node has no outgoing edges. Weights must be
// non-negative (ErrNegativeWeight).
//
// Auxiliary operations:
//
//	PathDistance(m, path) float64   // sum of edge weights, missing edges count as 0
//	PathNodes(m, path) []Node       // resolve ids, dropping unknown ones
//
// Errors:
//
//	ErrNilMap          – nil *Map passed where a map is required.
//	ErrEmptyMapID      – document without a map id.
//	ErrEmptyNodeID     – node or edge endpoint with an empty id.
//	ErrDuplicateNode   – two nodes sharing an id within one map.
//	ErrNegativeWeight  – edge with weight < 0.
//	ErrUnknownKind     – node kind outside waypoint/room/gateway.
//	ErrMapNotFound     – returned by map sources for an unknown map id.
package core
