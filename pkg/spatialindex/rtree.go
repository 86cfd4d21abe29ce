package spatialindex

import (
	"math"
	"sort"

	"github.com/lintang-b-s/poinav/pkg"
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/geo"
	"github.com/lintang-b-s/poinav/pkg/util"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[NearbyAttraction]
}

type NearbyAttraction struct {
	name     string
	coord    datastructure.GeoCoord
	distance float64 // miles from the query point, set by SearchWithinRadius
}

func (na NearbyAttraction) GetName() string {
	return na.name
}

func (na NearbyAttraction) GetCoord() datastructure.GeoCoord {
	return na.coord
}

func (na NearbyAttraction) GetDistance() float64 {
	return na.distance
}

func newNearbyAttraction(name string, coord datastructure.GeoCoord) NearbyAttraction {
	return NearbyAttraction{
		name:  name,
		coord: coord,
	}
}

type AttractionSource interface {
	ForEach(handle func(name string, coord datastructure.GeoCoord) bool)
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[NearbyAttraction]
	return &Rtree{
		tr: &tr,
	}
}

// Build. insert every attraction as a point.
func (rt *Rtree) Build(attractions AttractionSource, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	count := 0
	attractions.ForEach(func(name string, coord datastructure.GeoCoord) bool {
		p := [2]float64{coord.Lon, coord.Lat}
		rt.tr.Insert(p, p, newNearbyAttraction(name, coord))
		count++
		return true
	})
	log.Info("R-tree spatial index built.", zap.Int("attractions", count))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius. attractions within radius (in miles) of (qLat, qLon), nearest first.
// limit <= 0 returns all of them.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64, limit int) []NearbyAttraction {
	results := make([]NearbyAttraction, 0, 10)
	for _, box := range searchBoxes(qLat, qLon, geo.MilesToKm(radius)) {
		rt.tr.Search(box.min, box.max,
			func(min, max [2]float64, data NearbyAttraction) bool {
				d := geo.GreatCircleDistanceMiles(qLat, qLon, data.coord.Lat, data.coord.Lon)
				if d <= radius {
					data.distance = d
					results = append(results, data)
				}
				return true
			})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].distance != results[j].distance {
			return results[i].distance < results[j].distance
		}
		return results[i].name < results[j].name
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

type bbox struct {
	min, max [2]float64 // lon, lat
}

// searchBoxes bounds the circle of radiusKm around (qLat, qLon). a circle crossing the antimeridian
// gets one box on each side of it, a circle reaching a pole gets every longitude.
func searchBoxes(qLat, qLon, radiusKm float64) []bbox {
	const eps = 1e-9

	angDist := radiusKm / pkg.EARTH_RADIUS_KM
	dLat := util.RadiansToDegree(angDist)
	lowerLat, upperLat := qLat-dLat-eps, qLat+dLat+eps

	whole := []bbox{{
		min: [2]float64{-180, math.Max(lowerLat, -90)},
		max: [2]float64{180, math.Min(upperLat, 90)},
	}}
	if lowerLat <= -90 || upperLat >= 90 {
		return whole
	}

	sinLon := math.Sin(angDist) / math.Cos(util.DegreeToRadians(qLat))
	if sinLon >= 1 {
		return whole
	}
	dLon := util.RadiansToDegree(math.Asin(sinLon)) + eps
	lowerLon, upperLon := qLon-dLon, qLon+dLon

	switch {
	case lowerLon < -180:
		return []bbox{
			{min: [2]float64{lowerLon + 360, lowerLat}, max: [2]float64{180, upperLat}},
			{min: [2]float64{-180, lowerLat}, max: [2]float64{upperLon, upperLat}},
		}
	case upperLon > 180:
		return []bbox{
			{min: [2]float64{lowerLon, lowerLat}, max: [2]float64{180, upperLat}},
			{min: [2]float64{-180, lowerLat}, max: [2]float64{upperLon - 360, upperLat}},
		}
	default:
		return []bbox{{min: [2]float64{lowerLon, lowerLat}, max: [2]float64{upperLon, upperLat}}}
	}
}
