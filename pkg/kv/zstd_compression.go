package kv

import (
	"github.com/DataDog/zstd"
	"github.com/paulmach/orb/geojson"
)

func Encode(features []*geojson.Feature) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	fc.Features = features
	return fc.MarshalJSON()
}

func Decode(bb []byte) ([]*geojson.Feature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(bb)
	if err != nil {
		return nil, err
	}
	return fc.Features, nil
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}

// CompressFeatures encode feature ke geojson lalu compress pakai zstd.
func CompressFeatures(features []*geojson.Feature) ([]byte, error) {
	bb, err := Encode(features)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func LoadFeatures(bbCompressed []byte) ([]*geojson.Feature, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return nil, err
	}
	return Decode(bb)
}
