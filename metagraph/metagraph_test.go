package metagraph_test

import (
	"testing"

	"github.com/katalvlaran/mapnav/core"
	"github.com/katalvlaran/mapnav/metagraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gw is a gateway node pointing at mapID/nodeID.
func gw(id, mapID, nodeID string) core.NodeDocument {
	return core.NodeDocument{ID: id, Kind: "gateway", TargetMapID: mapID, TargetNodeID: nodeID}
}

func mustMap(t *testing.T, id string, nodes ...core.NodeDocument) *core.Map {
	t.Helper()
	m, err := core.NewMap(core.MapDocument{ID: id, Nodes: nodes})
	require.NoError(t, err)
	return m
}

func TestBuild(t *testing.T) {
	maps := []*core.Map{
		mustMap(t, "campus", gw("g1", "lobby", "in"), gw("g2", "lobby", "side"), gw("g3", "garage", "ramp")),
		mustMap(t, "lobby", gw("out", "campus", "g1"), gw("up", "floor1", "lift")),
		mustMap(t, "floor1", core.NodeDocument{ID: "lift"}),
		mustMap(t, "garage",
			core.NodeDocument{ID: "ramp"},
			core.NodeDocument{ID: "broken", Kind: "gateway", TargetMapID: "floor1"}, // no target node
		),
		nil,
	}

	mg := metagraph.Build(maps)

	assert.Equal(t, 4, mg.Len())
	assert.Equal(t, []string{"campus", "floor1", "garage", "lobby"}, mg.MapIDs())
	assert.Equal(t, map[string][]string{
		"campus": {"garage", "lobby"},
		"lobby":  {"campus", "floor1"},
		"floor1": {},
		"garage": {},
	}, mg.AdjacencyList())

	assert.True(t, mg.Has("floor1"), "maps without gateways are still keys")
	assert.False(t, mg.Has("roof"))
	assert.Nil(t, mg.Neighbors("roof"))
}

func TestBuild_SelfLoopKept(t *testing.T) {
	mg := metagraph.Build([]*core.Map{
		mustMap(t, "tower", core.NodeDocument{ID: "a"}, gw("shaft", "tower", "a")),
	})
	assert.Equal(t, []string{"tower"}, mg.Neighbors("tower"))
}

func TestBuild_DanglingTarget(t *testing.T) {
	mg := metagraph.Build([]*core.Map{mustMap(t, "a", gw("g", "missing", "x"))})
	assert.Equal(t, []string{"missing"}, mg.Neighbors("a"))
	assert.False(t, mg.Has("missing"))
}

func TestNilMetaGraph(t *testing.T) {
	var mg *metagraph.MetaGraph
	assert.False(t, mg.Has("a"))
	assert.Nil(t, mg.Neighbors("a"))
	assert.Nil(t, mg.MapIDs())
	assert.Zero(t, mg.Len())
	assert.Empty(t, mg.AdjacencyList())
}
