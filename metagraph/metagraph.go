// Package metagraph derives map-to-map connectivity from the gateway nodes
// scattered across a collection of maps.
//
// The meta-graph's vertices are map ids; an edge A→B exists iff map A holds
// at least one valid gateway whose target map is B. Every map in the input
// gets a key, even when it has no gateways, so "known with no exits" is
// never confused with "unknown".
package metagraph

import (
	"sort"

	"github.com/katalvlaran/mapnav/core"
)

// MetaGraph is an immutable map-level connectivity graph.
type MetaGraph struct {
	links map[string]map[string]struct{} // map ID → set of reachable map IDs
}

// Build scans every valid gateway of every map. Nil maps are skipped.
// Gateway targets naming maps outside the collection are still recorded as
// links; such ids are not keys, so a search can step toward them but never
// start from or finish at them.
//
// Complexity: O(M + G) for M maps and G gateways in total.
func Build(maps []*core.Map) *MetaGraph {
	mg := &MetaGraph{links: make(map[string]map[string]struct{}, len(maps))}
	for _, m := range maps {
		if m == nil {
			continue
		}
		if _, ok := mg.links[m.ID()]; !ok {
			mg.links[m.ID()] = make(map[string]struct{})
		}
	}
	for _, m := range maps {
		if m == nil {
			continue
		}
		set := mg.links[m.ID()]
		for _, gw := range m.Gateways() {
			t, _ := gw.Gateway()
			set[t.MapID] = struct{}{}
		}
	}
	return mg
}

// Has reports whether id is a key of the meta-graph.
func (mg *MetaGraph) Has(id string) bool {
	if mg == nil {
		return false
	}
	_, ok := mg.links[id]
	return ok
}

// Neighbors returns the distinct map ids reachable from id in one gateway
// hop, sorted ascending. Unknown ids yield nil.
func (mg *MetaGraph) Neighbors(id string) []string {
	if mg == nil {
		return nil
	}
	set, ok := mg.links[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for to := range set {
		out = append(out, to)
	}
	sort.Strings(out)
	return out
}

// MapIDs returns every key, sorted ascending.
func (mg *MetaGraph) MapIDs() []string {
	if mg == nil {
		return nil
	}
	out := make([]string, 0, len(mg.links))
	for id := range mg.links {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of keys.
func (mg *MetaGraph) Len() int {
	if mg == nil {
		return 0
	}
	return len(mg.links)
}

// AdjacencyList returns a copy of the whole graph as id → sorted neighbours.
func (mg *MetaGraph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, mg.Len())
	for _, id := range mg.MapIDs() {
		out[id] = mg.Neighbors(id)
	}
	return out
}
