// File: map.go
// Role: Map construction from documents and read-only queries.
//
// Determinism:
//   - NodeIDs() and Gateways() return ids sorted lexicographically ascending.
//   - Edges(id) preserves authored order (first matching edge wins in EdgeWeight).
//
// Concurrency:
//   - A Map is never mutated after NewMap returns; no locks are needed.

package core

import (
	"fmt"
	"sort"
)

// Map is an immutable snapshot of one map: its nodes and adjacency.
type Map struct {
	id    string
	name  string
	image string

	nodes     map[string]Node   // node ID → Node
	order     []string          // node IDs, sorted
	adjacency map[string][]Edge // from node ID → outgoing edges
	gateways  []string          // IDs of valid gateway nodes, sorted
}

// NewMap validates doc and builds an immutable Map from it.
//
// Gateway classification happens here and only here: a node becomes a
// gateway iff Kind == "gateway" and both TargetMapID and TargetNodeID are
// non-empty. An empty Kind defaults to KindWaypoint.
//
// Edges may point at ids missing from the node set; searches simply never
// settle on them.
//
// Errors:
//   - ErrEmptyMapID, ErrEmptyNodeID, ErrDuplicateNode, ErrUnknownKind,
//     ErrNegativeWeight, each wrapped with the offending ids.
//
// Complexity: O(V log V + E).
func NewMap(doc MapDocument) (*Map, error) {
	if doc.ID == "" {
		return nil, ErrEmptyMapID
	}

	m := &Map{
		id:        doc.ID,
		name:      doc.Name,
		image:     doc.Image,
		nodes:     make(map[string]Node, len(doc.Nodes)),
		order:     make([]string, 0, len(doc.Nodes)),
		adjacency: make(map[string][]Edge, len(doc.Adjacency)),
	}

	for _, nd := range doc.Nodes {
		n, err := nodeFromDocument(nd)
		if err != nil {
			return nil, fmt.Errorf("map %q: %w", doc.ID, err)
		}
		if _, dup := m.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q in map %q", ErrDuplicateNode, n.ID, doc.ID)
		}
		m.nodes[n.ID] = n
		m.order = append(m.order, n.ID)
		if n.IsGateway() {
			m.gateways = append(m.gateways, n.ID)
		}
	}
	sort.Strings(m.order)
	sort.Strings(m.gateways)

	for from, edges := range doc.Adjacency {
		if from == "" {
			return nil, fmt.Errorf("%w: adjacency key in map %q", ErrEmptyNodeID, doc.ID)
		}
		out := make([]Edge, 0, len(edges))
		for _, e := range edges {
			if e.To == "" {
				return nil, fmt.Errorf("%w: edge from %q in map %q", ErrEmptyNodeID, from, doc.ID)
			}
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %s→%s weight=%g in map %q", ErrNegativeWeight, from, e.To, e.Weight, doc.ID)
			}
			out = append(out, Edge{To: e.To, Weight: e.Weight})
		}
		m.adjacency[from] = out
	}

	return m, nil
}

func nodeFromDocument(nd NodeDocument) (Node, error) {
	if nd.ID == "" {
		return Node{}, ErrEmptyNodeID
	}
	kind := NodeKind(nd.Kind)
	if kind == "" {
		kind = KindWaypoint
	}
	if !kind.Valid() {
		return Node{}, fmt.Errorf("%w: %q on node %q", ErrUnknownKind, nd.Kind, nd.ID)
	}
	n := Node{ID: nd.ID, Kind: kind, Name: nd.Name, Description: nd.Description}
	if kind == KindGateway && nd.TargetMapID != "" && nd.TargetNodeID != "" {
		n.gateway = &Target{MapID: nd.TargetMapID, NodeID: nd.TargetNodeID}
	}
	return n, nil
}

// ID returns the map id.
func (m *Map) ID() string { return m.id }

// Name returns the human-readable map name.
func (m *Map) Name() string { return m.name }

// Image returns the opaque background-image reference.
func (m *Map) Image() string { return m.image }

// Node looks up a node by id.
func (m *Map) Node(id string) (Node, bool) {
	n, ok := m.nodes[id]
	return n, ok
}

// HasNode reports whether id is in the map's node set.
func (m *Map) HasNode(id string) bool {
	_, ok := m.nodes[id]
	return ok
}

// NodeCount returns the number of nodes.
func (m *Map) NodeCount() int { return len(m.nodes) }

// NodeIDs returns every node id in ascending order. The slice is a copy.
func (m *Map) NodeIDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Edges returns a copy of the outgoing edges of id (nil if it has none).
func (m *Map) Edges(id string) []Edge {
	edges, ok := m.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// EdgeWeight returns the weight of the first from→to edge.
func (m *Map) EdgeWeight(from, to string) (float64, bool) {
	for _, e := range m.adjacency[from] {
		if e.To == to {
			return e.Weight, true
		}
	}
	return 0, false
}

// Gateways returns every valid gateway node, sorted by id.
func (m *Map) Gateways() []Node {
	out := make([]Node, 0, len(m.gateways))
	for _, id := range m.gateways {
		out = append(out, m.nodes[id])
	}
	return out
}

// GatewaysTo returns the valid gateway nodes whose target map is mapID,
// sorted by id.
func (m *Map) GatewaysTo(mapID string) []Node {
	var out []Node
	for _, id := range m.gateways {
		n := m.nodes[id]
		if n.gateway.MapID == mapID {
			out = append(out, n)
		}
	}
	return out
}

// Document converts the map back into its authored form. Nodes come out in
// id order; malformed gateway nodes keep their kind but lose their target.
func (m *Map) Document() MapDocument {
	doc := MapDocument{
		ID:    m.id,
		Name:  m.name,
		Image: m.image,
		Nodes: make([]NodeDocument, 0, len(m.order)),
	}
	for _, id := range m.order {
		n := m.nodes[id]
		nd := NodeDocument{ID: n.ID, Kind: string(n.Kind), Name: n.Name, Description: n.Description}
		if t, ok := n.Gateway(); ok {
			nd.TargetMapID, nd.TargetNodeID = t.MapID, t.NodeID
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	if len(m.adjacency) > 0 {
		doc.Adjacency = make(map[string][]EdgeDocument, len(m.adjacency))
		for from, edges := range m.adjacency {
			out := make([]EdgeDocument, len(edges))
			for i, e := range edges {
				out[i] = EdgeDocument{To: e.To, Weight: e.Weight}
			}
			doc.Adjacency[from] = out
		}
	}
	return doc
}
