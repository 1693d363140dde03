package osmparser_test

import (
	"testing"

	"lintang/georoute/pkg/datastructure"
	"lintang/georoute/pkg/engine/network"
	"lintang/georoute/pkg/osmparser"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func way(id osm.WayID, nodeIDs []osm.NodeID, tags ...osm.Tag) *osm.Way {
	w := &osm.Way{ID: id, Tags: tags}
	for _, n := range nodeIDs {
		w.Nodes = append(w.Nodes, osm.WayNode{ID: n})
	}
	return w
}

func TestWaysToFeatures(t *testing.T) {
	nodes := map[osm.NodeID]orb.Point{
		1: {17.0, 51.1},
		2: {17.1, 51.1},
		3: {17.2, 51.1},
		4: {17.2, 51.2},
	}

	ways := []*osm.Way{
		way(10, []osm.NodeID{1, 2, 3}, osm.Tag{Key: "highway", Value: "primary"}, osm.Tag{Key: "name", Value: "Legnicka"}),
		way(11, []osm.NodeID{3, 4}, osm.Tag{Key: "highway", Value: "residential"}, osm.Tag{Key: "oneway", Value: "yes"}),
		way(12, []osm.NodeID{4, 2}, osm.Tag{Key: "highway", Value: "tertiary"}, osm.Tag{Key: "oneway", Value: "-1"}),
		way(13, []osm.NodeID{1, 4}, osm.Tag{Key: "building", Value: "yes"}),
		way(14, []osm.NodeID{1, 99}, osm.Tag{Key: "highway", Value: "footway"}),
		way(15, []osm.NodeID{2, 4}, osm.Tag{Key: "highway", Value: "secondary"}, osm.Tag{Key: "junction", Value: "roundabout"}),
	}

	fc := osmparser.WaysToFeatures(ways, nodes)
	require.Len(t, fc.Features, 4)

	primary := fc.Features[0]
	assert.Equal(t, "primary", primary.Properties.MustString("fclass"))
	assert.Equal(t, "B", primary.Properties.MustString("oneway"))
	assert.Equal(t, "Legnicka", primary.Properties.MustString("name"))
	assert.Equal(t, orb.MultiLineString{{{17.0, 51.1}, {17.1, 51.1}, {17.2, 51.1}}}, primary.Geometry)

	assert.Equal(t, "F", fc.Features[1].Properties.MustString("oneway"))

	reversed := fc.Features[2]
	assert.Equal(t, "F", reversed.Properties.MustString("oneway"))
	assert.Equal(t, orb.MultiLineString{{{17.1, 51.1}, {17.2, 51.2}}}, reversed.Geometry)

	assert.Equal(t, "F", fc.Features[3].Properties.MustString("oneway"))

	// oneway -1 artinya cuma bisa dari node 2 ke node 4
	g := network.BuildGraph(fc, datastructure.ModeCar)
	assert.Contains(t, g.GetOutEdges(orb.Point{17.1, 51.1}), orb.Point{17.2, 51.2})
	assert.NotContains(t, g.GetOutEdges(orb.Point{17.2, 51.2}), orb.Point{17.1, 51.1})
}
