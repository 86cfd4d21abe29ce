package usecases

import (
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/geo"
)

func routePolyline(directions []datastructure.NavSegment) string {
	pathCoords := datastructure.NavPathCoords(directions)
	coords := make([]geo.Coordinate, 0, len(pathCoords))
	for _, c := range pathCoords {
		coords = append(coords, geo.NewCoordinate(c.Lat, c.Lon))
	}
	return geo.PolylineFromCoords(coords)
}
