package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mapnav/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lobbyDoc is a small lobby with one elevator gateway, one malformed
// gateway and a one-way corridor:
//
//	door →(2) hall →(3) lift
//	          hall ⇄(1) desk
func lobbyDoc() core.MapDocument {
	return core.MapDocument{
		ID:    "lobby",
		Name:  "Lobby",
		Image: "lobby.png",
		Nodes: []core.NodeDocument{
			{ID: "door", Kind: "waypoint", Name: "Main door"},
			{ID: "hall", Name: "Hall"},
			{ID: "desk", Kind: "room", Name: "Front desk"},
			{ID: "lift", Kind: "gateway", Name: "Lift", TargetMapID: "floor1", TargetNodeID: "lift1"},
			{ID: "stairs", Kind: "gateway", Name: "Stairs", TargetMapID: "floor1"},
		},
		Adjacency: map[string][]core.EdgeDocument{
			"door": {{To: "hall", Weight: 2}},
			"hall": {{To: "lift", Weight: 3}, {To: "desk", Weight: 1}},
			"desk": {{To: "hall", Weight: 1}},
		},
	}
}

func TestNewMap_Accessors(t *testing.T) {
	m, err := core.NewMap(lobbyDoc())
	require.NoError(t, err)

	assert.Equal(t, "lobby", m.ID())
	assert.Equal(t, "Lobby", m.Name())
	assert.Equal(t, "lobby.png", m.Image())
	assert.Equal(t, 5, m.NodeCount())
	assert.Equal(t, []string{"desk", "door", "hall", "lift", "stairs"}, m.NodeIDs())

	hall, ok := m.Node("hall")
	require.True(t, ok)
	assert.Equal(t, core.KindWaypoint, hall.Kind, "empty kind defaults to waypoint")

	assert.True(t, m.HasNode("desk"))
	assert.False(t, m.HasNode("roof"))

	w, ok := m.EdgeWeight("hall", "lift")
	require.True(t, ok)
	assert.Equal(t, 3.0, w)
	_, ok = m.EdgeWeight("lift", "hall")
	assert.False(t, ok, "edges are one-way")

	assert.Nil(t, m.Edges("lift"))
	assert.Len(t, m.Edges("hall"), 2)
}

func TestNewMap_GatewayVariant(t *testing.T) {
	m, err := core.NewMap(lobbyDoc())
	require.NoError(t, err)

	lift, _ := m.Node("lift")
	target, ok := lift.Gateway()
	require.True(t, ok)
	assert.Equal(t, core.Target{MapID: "floor1", NodeID: "lift1"}, target)

	// Kind says gateway, but the target node is missing.
	stairs, _ := m.Node("stairs")
	assert.Equal(t, core.KindGateway, stairs.Kind)
	assert.False(t, stairs.IsGateway())

	gws := m.Gateways()
	require.Len(t, gws, 1)
	assert.Equal(t, "lift", gws[0].ID)
	assert.Len(t, m.GatewaysTo("floor1"), 1)
	assert.Empty(t, m.GatewaysTo("lobby"))
}

func TestNewMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  core.MapDocument
		want error
	}{
		{"empty map id", core.MapDocument{}, core.ErrEmptyMapID},
		{"empty node id", core.MapDocument{ID: "m", Nodes: []core.NodeDocument{{ID: ""}}}, core.ErrEmptyNodeID},
		{"duplicate node", core.MapDocument{ID: "m", Nodes: []core.NodeDocument{{ID: "a"}, {ID: "a"}}}, core.ErrDuplicateNode},
		{"unknown kind", core.MapDocument{ID: "m", Nodes: []core.NodeDocument{{ID: "a", Kind: "elevator"}}}, core.ErrUnknownKind},
		{"negative weight", core.MapDocument{
			ID:        "m",
			Nodes:     []core.NodeDocument{{ID: "a"}, {ID: "b"}},
			Adjacency: map[string][]core.EdgeDocument{"a": {{To: "b", Weight: -1}}},
		}, core.ErrNegativeWeight},
		{"empty edge target", core.MapDocument{
			ID:        "m",
			Nodes:     []core.NodeDocument{{ID: "a"}},
			Adjacency: map[string][]core.EdgeDocument{"a": {{To: ""}}},
		}, core.ErrEmptyNodeID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewMap(tc.doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestMap_DocumentRoundTrip(t *testing.T) {
	m, err := core.NewMap(lobbyDoc())
	require.NoError(t, err)

	again, err := core.NewMap(m.Document())
	require.NoError(t, err)

	assert.Equal(t, m.NodeIDs(), again.NodeIDs())
	assert.Equal(t, m.Gateways(), again.Gateways())
	assert.Equal(t, m.Edges("hall"), again.Edges("hall"))
}

func TestMap_ReturnedSlicesAreCopies(t *testing.T) {
	m, err := core.NewMap(lobbyDoc())
	require.NoError(t, err)

	ids := m.NodeIDs()
	ids[0] = "mutated"
	edges := m.Edges("hall")
	edges[0].Weight = 99

	assert.Equal(t, "desk", m.NodeIDs()[0])
	w, _ := m.EdgeWeight("hall", "lift")
	assert.Equal(t, 3.0, w)
}
