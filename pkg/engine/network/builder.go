package network

import (
	"lintang/georoute/pkg/datastructure"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	propRoadClass = "fclass"
	propOneway    = "oneway"

	// onewayForward cuma bisa dilewati searah urutan titik di geometry
	onewayForward = "F"
)

// BuildGraph bikin graph dari feature collection road network. Hanya feature MultiLineString
// dengan fclass yang masuk allow-list mode yang diproses, feature lain di-skip.
func BuildGraph(fc *geojson.FeatureCollection, mode datastructure.Mode) *datastructure.Graph {
	g := datastructure.NewGraph()
	if fc == nil {
		return g
	}

	for _, feature := range fc.Features {
		if feature == nil {
			continue
		}
		if !mode.Allows(feature.Properties.MustString(propRoadClass, "")) {
			continue
		}

		lines, ok := feature.Geometry.(orb.MultiLineString)
		if !ok {
			continue
		}
		isOneWay := feature.Properties.MustString(propOneway, "") == onewayForward

		for _, line := range lines {
			for i, point := range line {
				g.AddNode(point)
				if i > 0 {
					g.AddEdge(line[i-1], point, isOneWay)
				}
			}
		}
	}
	return g
}

// BuildGraphForMode sama seperti BuildGraph tapi mode masih string dari request. mode yang tidak dikenal di-reject.
func BuildGraphForMode(fc *geojson.FeatureCollection, mode string) (*datastructure.Graph, error) {
	m, err := datastructure.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return BuildGraph(fc, m), nil
}
