package datastructure

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
)

const earthRadiusMeters = 6371008.8

// Route hasil shortest path query. Path kosong & Found false kalau goal tidak reachable.
type Route struct {
	Path  []orb.Point
	Cost  float64 // jumlah jarak euclidean antar titik (satuan koordinat mentah)
	Found bool
}

func NotFoundRoute() Route {
	return Route{Path: []orb.Point{}}
}

// GeodesicLength panjang rute di permukaan bumi dalam meter.
func (r Route) GeodesicLength() float64 {
	length := 0.0
	for i := 1; i < len(r.Path); i++ {
		prev := s2.LatLngFromDegrees(r.Path[i-1].Lat(), r.Path[i-1].Lon())
		curr := s2.LatLngFromDegrees(r.Path[i].Lat(), r.Path[i].Lon())
		length += prev.Distance(curr).Radians() * earthRadiusMeters
	}
	return length
}

// Polyline encode rute ke google encoded polyline (urutan lat, lon).
func (r Route) Polyline() string {
	coords := make([][]float64, 0, len(r.Path))
	for _, p := range r.Path {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}
	return string(polyline.EncodeCoords(coords))
}
