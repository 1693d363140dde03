package kv

import (
	"fmt"

	"lintang/georoute/pkg/datastructure"

	"github.com/paulmach/orb/geojson"
)

// NetworkProvider road network per travel mode yang di-load sekali waktu server start. read-only setelah dibuat,
// jadi aman dipakai banyak request sekaligus.
type NetworkProvider struct {
	meta     DatasetMeta
	networks map[datastructure.Mode]*geojson.FeatureCollection
}

// LoadNetworkProvider load road network dari pebble untuk semua mode.
func LoadNetworkProvider(k *KVDB) (*NetworkProvider, error) {
	meta, err := k.GetMeta()
	if err != nil {
		return nil, err
	}

	networks := make(map[datastructure.Mode]*geojson.FeatureCollection)
	for _, mode := range datastructure.Modes() {
		fc, err := k.LoadClasses(mode.AllowedClasses())
		if err != nil {
			return nil, fmt.Errorf("load %s network: %w", mode, err)
		}
		networks[mode] = fc
	}
	return &NetworkProvider{meta: meta, networks: networks}, nil
}

// NewNetworkProvider provider dari feature collection yang sudah ada di memory (misal dari file geojson).
func NewNetworkProvider(fc *geojson.FeatureCollection, source string) *NetworkProvider {
	meta := DatasetMeta{
		Source:      source,
		ClassCounts: make(map[string]int),
	}
	networks := make(map[datastructure.Mode]*geojson.FeatureCollection)
	for _, mode := range datastructure.Modes() {
		networks[mode] = geojson.NewFeatureCollection()
	}

	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		fclass := f.Properties.MustString("fclass", "")
		if fclass == "" {
			continue
		}
		meta.ClassCounts[fclass]++
		meta.FeatureCount++
		for _, mode := range datastructure.Modes() {
			if mode.Allows(fclass) {
				networks[mode].Append(f)
			}
		}
	}
	return &NetworkProvider{meta: meta, networks: networks}
}

func (p *NetworkProvider) Network(mode datastructure.Mode) (*geojson.FeatureCollection, error) {
	fc, ok := p.networks[mode]
	if !ok {
		return nil, fmt.Errorf("%w: no network for mode %s", ErrDatasetNotFound, mode)
	}
	return fc, nil
}

func (p *NetworkProvider) Meta() DatasetMeta {
	return p.meta
}
