package osmparser

import (
	"github.com/lintang-b-s/poinav/pkg/datastructure"
)

var (
	acceptedHighway = map[string]struct{}{
		"motorway":         {},
		"motorway_link":    {},
		"trunk":            {},
		"trunk_link":       {},
		"primary":          {},
		"primary_link":     {},
		"secondary":        {},
		"secondary_link":   {},
		"tertiary":         {},
		"tertiary_link":    {},
		"residential":      {},
		"residential_link": {},
		"living_street":    {},
		"unclassified":     {},
		"service":          {},
		"road":             {},
		"pedestrian":       {},
	}

	// keys whose presence on a named node makes it an attraction
	attractionKeys = []string{
		"tourism",
		"amenity",
		"shop",
		"historic",
		"leisure",
	}
)

const (
	// decimals kept for coordinate text, ~1 cm
	coordPrecision = 7
	// max distance between a free standing attraction node and the street it is attached to
	defaultSnapRadiusMiles = 0.05
)

type osmWay struct {
	name  string
	nodes []int64
}

type nodeCoord struct {
	lat float64
	lon float64
}

type attractionNode struct {
	id    int64
	name  string
	coord nodeCoord
}

func (n nodeCoord) geoCoord() datastructure.GeoCoord {
	return datastructure.NewGeoCoordFromFloat(n.lat, n.lon, coordPrecision)
}
