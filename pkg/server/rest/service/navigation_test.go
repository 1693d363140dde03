package service_test

import (
	"context"
	"errors"
	"testing"

	"lintang/georoute/pkg/datastructure"
	"lintang/georoute/pkg/kv"
	"lintang/georoute/pkg/server"
	"lintang/georoute/pkg/server/rest/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func road(fclass, oneway string, line orb.LineString) *geojson.Feature {
	f := geojson.NewFeature(orb.MultiLineString{line})
	f.Properties["fclass"] = fclass
	f.Properties["oneway"] = oneway
	return f
}

func sampleRoads() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Append(road("primary", "B", orb.LineString{{0, 0}, {1, 0}, {2, 0}}))
	fc.Append(road("footway", "B", orb.LineString{{0, 0}, {0, 1}, {2, 1}, {2, 0}}))
	return fc
}

func errCode(t *testing.T, err error) error {
	t.Helper()
	var serr *server.Error
	require.True(t, errors.As(err, &serr))
	return serr.Code()
}

func TestShortestPath(t *testing.T) {
	svc := service.NewNavigationService(nil)
	ctx := context.Background()

	t.Run("mode car lewat primary", func(t *testing.T) {
		route, err := svc.ShortestPath(ctx, sampleRoads(), orb.Point{0, 0}, orb.Point{2, 0}, "car", false)
		require.NoError(t, err)
		assert.True(t, route.Found)
		assert.Equal(t, []orb.Point{{0, 0}, {1, 0}, {2, 0}}, route.Path)
		assert.InDelta(t, 2.0, route.Cost, 1e-12)
	})

	t.Run("mode bikeFoot lewat footway", func(t *testing.T) {
		route, err := svc.ShortestPath(ctx, sampleRoads(), orb.Point{0, 0}, orb.Point{2, 0}, "bikeFoot", false)
		require.NoError(t, err)
		assert.Equal(t, []orb.Point{{0, 0}, {0, 1}, {2, 1}, {2, 0}}, route.Path)
		assert.InDelta(t, 4.0, route.Cost, 1e-12)
	})

	t.Run("goal tidak reachable bukan error", func(t *testing.T) {
		route, err := svc.ShortestPath(ctx, sampleRoads(), orb.Point{0, 0}, orb.Point{5, 5}, "car", false)
		require.NoError(t, err)
		assert.False(t, route.Found)
		assert.Empty(t, route.Path)
	})

	t.Run("snap start dan goal ke node terdekat", func(t *testing.T) {
		route, err := svc.ShortestPath(ctx, sampleRoads(), orb.Point{0.1, -0.05}, orb.Point{1.9, 0.02}, "car", true)
		require.NoError(t, err)
		assert.Equal(t, []orb.Point{{0, 0}, {1, 0}, {2, 0}}, route.Path)
	})

	t.Run("mode tidak dikenal", func(t *testing.T) {
		_, err := svc.ShortestPath(ctx, sampleRoads(), orb.Point{0, 0}, orb.Point{2, 0}, "boat", false)
		assert.ErrorIs(t, err, datastructure.ErrUnknownMode)
		assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
	})

	t.Run("context sudah cancel", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.ShortestPath(cancelled, sampleRoads(), orb.Point{0, 0}, orb.Point{2, 0}, "car", false)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestShortestPathDataset(t *testing.T) {
	ctx := context.Background()

	t.Run("tanpa dataset", func(t *testing.T) {
		svc := service.NewNavigationService(nil)
		_, err := svc.ShortestPathDataset(ctx, orb.Point{0, 0}, orb.Point{2, 0}, "car", false)
		assert.Equal(t, server.ErrNotFound, errCode(t, err))

		_, err = svc.DatasetInfo(ctx)
		assert.Equal(t, server.ErrNotFound, errCode(t, err))
	})

	t.Run("pakai dataset yang di-load di awal", func(t *testing.T) {
		svc := service.NewNavigationService(kv.NewNetworkProvider(sampleRoads(), "memory"))

		route, err := svc.ShortestPathDataset(ctx, orb.Point{2, 0}, orb.Point{0, 0}, "car", false)
		require.NoError(t, err)
		assert.Equal(t, []orb.Point{{2, 0}, {1, 0}, {0, 0}}, route.Path)

		meta, err := svc.DatasetInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, meta.FeatureCount)
	})
}
