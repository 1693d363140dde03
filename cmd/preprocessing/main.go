package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"lintang/georoute/pkg/kv"
	"lintang/georoute/pkg/osmparser"

	"github.com/cockroachdb/pebble"
	"github.com/paulmach/orb/geojson"
)

var (
	mapFile    = flag.String("f", "roads.geojson", "road network: file geojson FeatureCollection atau openstreetmap .osm.pbf")
	dbPath     = flag.String("db", "georouteDB", "pebble db tujuan")
	numWorkers = flag.Int("workers", runtime.NumCPU(), "jumlah worker untuk compress & simpan road class")
)

func main() {
	flag.Parse()

	fc, err := readRoadNetwork(context.Background(), *mapFile)
	if err != nil {
		log.Fatal(err)
	}

	db, err := pebble.Open(*dbPath, &pebble.Options{})
	if err != nil {
		log.Fatal(err)
	}

	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	meta, err := kvDB.SaveNetwork(fc, *mapFile, *numWorkers, true)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nroad network %s saved to %s: %d features, %d road classes\n", meta.ID, *dbPath,
		meta.FeatureCount, len(meta.ClassCounts))
}

func readRoadNetwork(ctx context.Context, path string) (*geojson.FeatureCollection, error) {
	if strings.HasSuffix(path, ".pbf") {
		return osmparser.NewOSMParser(true).ParseFile(ctx, path)
	}

	bb, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return geojson.UnmarshalFeatureCollection(bb)
}
