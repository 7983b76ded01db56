package core

// PathDistance sums the weights of consecutive edges along path on m.
// A pair with no connecting edge contributes zero, so a disconnected path
// is NOT detected here. Parallel edges resolve to the first one authored.
// Returns 0 for a nil map or a path shorter than two nodes.
func PathDistance(m *Map, path []string) float64 {
	if m == nil || len(path) < 2 {
		return 0
	}
	var total float64
	for i := 0; i+1 < len(path); i++ {
		if w, ok := m.EdgeWeight(path[i], path[i+1]); ok {
			total += w
		}
	}
	return total
}

// PathNodes resolves path into full nodes, silently dropping ids that are
// not in m's node set. Intended for display.
func PathNodes(m *Map, path []string) []Node {
	if m == nil {
		return nil
	}
	out := make([]Node, 0, len(path))
	for _, id := range path {
		if n, ok := m.nodes[id]; ok {
			out = append(out, n)
		}
	}
	return out
}
