// Package gateway picks the exit gateway of a map that leads toward a
// desired neighbouring map at the lowest local cost.
//
// Candidates are the map's valid gateways (see core.Node.Gateway) whose
// target map equals the desired map. Each candidate is routed to from the
// entry node with dijkstra.ShortestPath. Candidates it reports as
// unreachable (dijkstra.ErrNoPath) are discarded and the cheapest remaining
// one wins. Any other router error aborts the selection. Cost is recomputed
// from the adjacency with core.PathDistance rather than taken from the search.
//
// Ties between equally cheap gateways go to the smallest node id.
package gateway

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mapnav/core"
	"github.com/katalvlaran/mapnav/dijkstra"
)

// ErrNoUsableGateway is returned when no gateway of the map targets the
// desired map, or none of those that do is reachable from the entry node.
var ErrNoUsableGateway = errors.New("gateway: no usable gateway")

// Choice is the selected exit gateway.
type Choice struct {
	// NodeID is the gateway node on the current map.
	NodeID string
	// Target is where the gateway leads.
	Target core.Target
	// Path is the local walk from the entry node to NodeID, both included.
	Path []string
	// Distance is the summed edge weight of Path.
	Distance float64
}

// Candidates returns every valid gateway on m targeting mapID, sorted by id.
func Candidates(m *core.Map, mapID string) []core.Node {
	if m == nil {
		return nil
	}
	return m.GatewaysTo(mapID)
}

// Select returns the cheapest reachable gateway on m leading to targetMap,
// starting from node from. opts are forwarded to the local router.
//
// Errors:
//   - core.ErrNilMap for a nil map.
//   - dijkstra.ErrNodeNotFound when from is not on m; a missing entry node
//     is a data error, not an unreachable gateway.
//   - ErrNoUsableGateway when no candidate exists or none is reachable.
//   - dijkstra.ErrOptionViolation for an invalid router option.
func Select(m *core.Map, from, targetMap string, opts ...dijkstra.Option) (Choice, error) {
	if m == nil {
		return Choice{}, core.ErrNilMap
	}
	if !m.HasNode(from) {
		return Choice{}, fmt.Errorf("%w: node %q in map %q", dijkstra.ErrNodeNotFound, from, m.ID())
	}

	candidates := Candidates(m, targetMap)
	if len(candidates) == 0 {
		return Choice{}, fmt.Errorf("%w: map %q has no gateway to %q", ErrNoUsableGateway, m.ID(), targetMap)
	}

	var (
		best  Choice
		found bool
	)
	for _, gw := range candidates {
		path, err := dijkstra.ShortestPath(m, from, gw.ID, opts...)
		if errors.Is(err, dijkstra.ErrNoPath) {
			continue
		}
		if err != nil {
			return Choice{}, err
		}
		cost := core.PathDistance(m, path)
		if found && cost >= best.Distance {
			continue
		}
		t, _ := gw.Gateway()
		best = Choice{NodeID: gw.ID, Target: t, Path: path, Distance: cost}
		found = true
	}
	if !found {
		return Choice{}, fmt.Errorf("%w: none of %d gateways from %q in map %q to %q is reachable",
			ErrNoUsableGateway, len(candidates), from, m.ID(), targetMap)
	}
	return best, nil
}
