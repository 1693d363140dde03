package network_test

import (
	"testing"

	"lintang/georoute/pkg/datastructure"
	"lintang/georoute/pkg/engine/network"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNetwork = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"fclass": "primary", "oneway": "B"},
     "geometry": {"type": "MultiLineString", "coordinates": [[[17.0, 51.1], [17.1, 51.1], [17.2, 51.1]]]}},
    {"type": "Feature", "properties": {"fclass": "residential", "oneway": "F"},
     "geometry": {"type": "MultiLineString", "coordinates": [[[17.2, 51.1], [17.2, 51.2]], [[17.3, 51.3], [17.4, 51.3]]]}},
    {"type": "Feature", "properties": {"fclass": "footway", "oneway": "B"},
     "geometry": {"type": "MultiLineString", "coordinates": [[[17.0, 51.1], [17.0, 51.0]]]}},
    {"type": "Feature", "properties": {"fclass": "cycleway", "oneway": "F"},
     "geometry": {"type": "MultiLineString", "coordinates": [[[17.0, 51.0], [16.9, 51.0]]]}},
    {"type": "Feature", "properties": {"fclass": "primary", "oneway": "B"},
     "geometry": {"type": "LineString", "coordinates": [[18.0, 52.0], [18.1, 52.0]]}}
  ]
}`

func loadSample(t *testing.T) *geojson.FeatureCollection {
	t.Helper()
	fc, err := geojson.UnmarshalFeatureCollection([]byte(sampleNetwork))
	require.NoError(t, err)
	return fc
}

func TestBuildGraph(t *testing.T) {
	t.Run("mode car cuma ambil road class mobil", func(t *testing.T) {
		g := network.BuildGraph(loadSample(t), datastructure.ModeCar)

		assert.Equal(t, []orb.Point{
			{17.0, 51.1}, {17.1, 51.1}, {17.2, 51.1}, {17.2, 51.2}, {17.3, 51.3}, {17.4, 51.3},
		}, g.Nodes)

		assert.Equal(t, []orb.Point{{17.1, 51.1}}, g.GetOutEdges(orb.Point{17.0, 51.1}))
		assert.Equal(t, []orb.Point{{17.0, 51.1}, {17.2, 51.1}}, g.GetOutEdges(orb.Point{17.1, 51.1}))
		assert.Equal(t, []orb.Point{{17.1, 51.1}, {17.2, 51.2}}, g.GetOutEdges(orb.Point{17.2, 51.1}))

		// residential oneway F
		assert.Empty(t, g.GetOutEdges(orb.Point{17.2, 51.2}))
		assert.Equal(t, []orb.Point{{17.4, 51.3}}, g.GetOutEdges(orb.Point{17.3, 51.3}))
		assert.Empty(t, g.GetOutEdges(orb.Point{17.4, 51.3}))
	})

	t.Run("class di luar allow-list tidak pernah masuk adjacency", func(t *testing.T) {
		g := network.BuildGraph(loadSample(t), datastructure.ModeCar)
		footNodes := []orb.Point{{17.0, 51.0}, {16.9, 51.0}}
		for _, n := range footNodes {
			assert.False(t, g.HasNode(n))
			assert.Empty(t, g.GetOutEdges(n))
		}
		for _, neighbors := range g.Edges {
			for _, n := range footNodes {
				assert.NotContains(t, neighbors, n)
			}
		}

		bike := network.BuildGraph(loadSample(t), datastructure.ModeBikeFoot)
		assert.Equal(t, []orb.Point{{17.0, 51.1}, {17.0, 51.0}, {16.9, 51.0}}, bike.Nodes)
		assert.Equal(t, []orb.Point{{17.0, 51.0}}, bike.GetOutEdges(orb.Point{17.0, 51.1}))
		assert.Equal(t, []orb.Point{{17.0, 51.1}, {16.9, 51.0}}, bike.GetOutEdges(orb.Point{17.0, 51.0}))
		assert.Empty(t, bike.GetOutEdges(orb.Point{16.9, 51.0}))
	})

	t.Run("geometry selain MultiLineString di-skip", func(t *testing.T) {
		g := network.BuildGraph(loadSample(t), datastructure.ModeCar)
		assert.False(t, g.HasNode(orb.Point{18.0, 52.0}))
		assert.False(t, g.HasNode(orb.Point{18.1, 52.0}))
	})

	t.Run("edge duplikat tetap disimpan", func(t *testing.T) {
		fc := geojson.NewFeatureCollection()
		for i := 0; i < 2; i++ {
			f := geojson.NewFeature(orb.MultiLineString{{{0, 0}, {1, 0}}})
			f.Properties["fclass"] = "primary"
			f.Properties["oneway"] = "B"
			fc.Append(f)
		}
		g := network.BuildGraph(fc, datastructure.ModeCar)
		assert.Equal(t, 2, g.GetNumNodes())
		assert.Equal(t, []orb.Point{{1, 0}, {1, 0}}, g.GetOutEdges(orb.Point{0, 0}))
		assert.Equal(t, 4, g.GetNumEdges())
	})

	t.Run("feature tanpa properties atau collection nil", func(t *testing.T) {
		fc := geojson.NewFeatureCollection()
		f := geojson.NewFeature(orb.MultiLineString{{{0, 0}, {1, 0}}})
		f.Properties = nil
		fc.Append(f)

		assert.Zero(t, network.BuildGraph(fc, datastructure.ModeCar).GetNumNodes())
		assert.Zero(t, network.BuildGraph(nil, datastructure.ModeCar).GetNumNodes())
	})

	t.Run("build dua kali hasilnya sama", func(t *testing.T) {
		first := network.BuildGraph(loadSample(t), datastructure.ModeCar)
		second := network.BuildGraph(loadSample(t), datastructure.ModeCar)

		assert.ElementsMatch(t, first.Nodes, second.Nodes)
		assert.Equal(t, len(first.Edges), len(second.Edges))
		for node, neighbors := range first.Edges {
			assert.ElementsMatch(t, neighbors, second.Edges[node])
		}
	})
}

func TestBuildGraphForMode(t *testing.T) {
	t.Run("mode valid", func(t *testing.T) {
		g, err := network.BuildGraphForMode(loadSample(t), "bikeFoot")
		require.NoError(t, err)
		assert.Equal(t, 3, g.GetNumNodes())
	})

	t.Run("mode tidak dikenal di-reject", func(t *testing.T) {
		g, err := network.BuildGraphForMode(loadSample(t), "helicopter")
		assert.ErrorIs(t, err, datastructure.ErrUnknownMode)
		assert.Nil(t, g)
	})
}
