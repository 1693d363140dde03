package osmparser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

const (
	onewayForward = "F"
	onewayBoth    = "B"
)

type OSMParser struct {
	showProgress bool
}

func NewOSMParser(showProgress bool) *OSMParser {
	return &OSMParser{showProgress: showProgress}
}

// ParseFile baca openstreetmap pbf file lalu ubah semua way yang punya tag highway jadi road network feature collection.
func (p *OSMParser) ParseFile(ctx context.Context, mapFile string) (*geojson.FeatureCollection, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipRelations = true

	var bar *progressbar.ProgressBar
	if p.showProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][1/2][reset] reading openstreetmap node & way..."),
		)
	}

	nodes := make(map[osm.NodeID]orb.Point)
	ways := []*osm.Way{}
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = orb.Point{o.Lon, o.Lat}
		case *osm.Way:
			if o.Tags.Find("highway") != "" {
				ways = append(ways, o)
			}
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", mapFile, err)
	}
	if bar != nil {
		bar.Finish()
		fmt.Println("")
	}

	return WaysToFeatures(ways, nodes), nil
}

// WaysToFeatures 1 osm way jadi 1 feature MultiLineString dengan properties fclass & oneway.
// way oneway=-1 dibalik urutan titiknya biar cukup pakai oneway F.
func WaysToFeatures(ways []*osm.Way, nodes map[osm.NodeID]orb.Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, way := range ways {
		roadClass := way.Tags.Find("highway")
		if roadClass == "" {
			continue
		}

		line := make(orb.LineString, 0, len(way.Nodes))
		for _, wn := range way.Nodes {
			point, ok := nodes[wn.ID]
			if !ok {
				// node di luar extract
				continue
			}
			line = append(line, point)
		}
		if len(line) < 2 {
			continue
		}

		oneway, reversed := getOneway(way.Tags)
		if reversed {
			line.Reverse()
		}

		feature := geojson.NewFeature(orb.MultiLineString{line})
		feature.ID = int64(way.ID)
		feature.Properties["osm_id"] = int64(way.ID)
		feature.Properties["fclass"] = roadClass
		feature.Properties["oneway"] = oneway
		if name := way.Tags.Find("name"); name != "" {
			feature.Properties["name"] = name
		}
		fc.Append(feature)
	}
	return fc
}

func getOneway(tags osm.Tags) (string, bool) {
	switch tags.Find("oneway") {
	case "yes", "1", "true":
		return onewayForward, false
	case "-1", "reverse":
		return onewayForward, true
	case "no", "false", "0":
		return onewayBoth, false
	}
	if tags.Find("junction") == "roundabout" || tags.Find("highway") == "motorway" {
		return onewayForward, false
	}
	return onewayBoth, false
}
