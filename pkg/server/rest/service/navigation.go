package service

import (
	"context"
	"errors"

	"lintang/georoute/pkg/datastructure"
	"lintang/georoute/pkg/engine/network"
	"lintang/georoute/pkg/engine/routingalgorithm"
	"lintang/georoute/pkg/kv"
	"lintang/georoute/pkg/server"
	"lintang/georoute/pkg/spatialindex"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// NetworkProvider road network yang sudah di-load waktu server start.
type NetworkProvider interface {
	Network(mode datastructure.Mode) (*geojson.FeatureCollection, error)
	Meta() kv.DatasetMeta
}

type NavigationService struct {
	networks NetworkProvider
}

// NewNavigationService networks boleh nil kalau server jalan tanpa dataset, query ke dataset jadi ErrNotFound.
func NewNavigationService(networks NetworkProvider) *NavigationService {
	return &NavigationService{networks: networks}
}

// ShortestPath bikin graph dari road network di request lalu cari shortest path start ke goal.
// goal yang tidak reachable bukan error, Route.Found = false.
func (uc *NavigationService) ShortestPath(ctx context.Context, roads *geojson.FeatureCollection, start, goal orb.Point,
	mode string, snap bool) (datastructure.Route, error) {
	m, err := datastructure.ParseMode(mode)
	if err != nil {
		return datastructure.Route{}, server.WrapErrorf(err, server.ErrBadParamInput, "unknown mode %q, use bikeFoot or car", mode)
	}
	if err := ctx.Err(); err != nil {
		return datastructure.Route{}, err
	}

	g := network.BuildGraph(roads, m)
	return shortestPath(g, start, goal, snap), nil
}

// ShortestPathDataset sama seperti ShortestPath tapi pakai road network yang di-load waktu startup.
func (uc *NavigationService) ShortestPathDataset(ctx context.Context, start, goal orb.Point, mode string,
	snap bool) (datastructure.Route, error) {
	m, err := datastructure.ParseMode(mode)
	if err != nil {
		return datastructure.Route{}, server.WrapErrorf(err, server.ErrBadParamInput, "unknown mode %q, use bikeFoot or car", mode)
	}
	if uc.networks == nil {
		return datastructure.Route{}, server.WrapErrorf(kv.ErrDatasetNotFound, server.ErrNotFound, "no road network dataset loaded on this server")
	}

	roads, err := uc.networks.Network(m)
	if err != nil {
		if errors.Is(err, kv.ErrDatasetNotFound) {
			return datastructure.Route{}, server.WrapErrorf(err, server.ErrNotFound, "no road network dataset for mode %s", m)
		}
		return datastructure.Route{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	if err := ctx.Err(); err != nil {
		return datastructure.Route{}, err
	}

	g := network.BuildGraph(roads, m)
	return shortestPath(g, start, goal, snap), nil
}

func (uc *NavigationService) DatasetInfo(ctx context.Context) (kv.DatasetMeta, error) {
	if uc.networks == nil {
		return kv.DatasetMeta{}, server.WrapErrorf(kv.ErrDatasetNotFound, server.ErrNotFound, "no road network dataset loaded on this server")
	}
	return uc.networks.Meta(), nil
}

func shortestPath(g *datastructure.Graph, start, goal orb.Point, snap bool) datastructure.Route {
	if snap {
		idx := spatialindex.NewNodeIndex(g.Nodes)
		start, _ = idx.Nearest(start)
		goal, _ = idx.Nearest(goal)
	}
	return routingalgorithm.NewRouteAlgorithm(g).AStar(start, goal)
}
