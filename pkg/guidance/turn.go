package guidance

import (
	"github.com/lintang-b-s/poinav/pkg"
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/geo"
)

/*
getTurnDirection. compare the line of the previous proceed with the line of the next one.
angles are counter-clockwise, so anything below 180° bends to the left.

	       next
	        ^
	        |   angle = 90° -> left
	prev ---+
*/
func getTurnDirection(prev, next datastructure.GeoSegment) string {
	angle := geo.AngleBetween2Lines(
		prev.Start.Lat, prev.Start.Lon, prev.End.Lat, prev.End.Lon,
		next.Start.Lat, next.Start.Lon, next.End.Lat, next.End.Lon,
	)
	if angle < 180 {
		return pkg.TURN_LEFT
	}
	return pkg.TURN_RIGHT
}

type headingBucket struct {
	upper     float64
	inclusive bool
	heading   string
}

// counter-clockwise from east, 45° wide buckets centred on each heading
var headingBuckets = []headingBucket{
	{22.5, true, pkg.HEADING_EAST},
	{67.5, true, pkg.HEADING_NORTHEAST},
	{112.5, true, pkg.HEADING_NORTH},
	{157.5, true, pkg.HEADING_NORTHWEST},
	{202.5, true, pkg.HEADING_WEST},
	{247.5, true, pkg.HEADING_SOUTHWEST},
	{292.5, true, pkg.HEADING_SOUTH},
	{337.5, true, pkg.HEADING_SOUTHEAST},
	{360, false, pkg.HEADING_EAST},
}

// getHeading. compass heading of the line gs.
func getHeading(gs datastructure.GeoSegment) string {
	return headingOfAngle(geo.AngleOfLine(gs.Start.Lat, gs.Start.Lon, gs.End.Lat, gs.End.Lon))
}

func headingOfAngle(angle float64) string {
	for _, b := range headingBuckets {
		if angle < b.upper || (b.inclusive && angle == b.upper) {
			return b.heading
		}
	}
	return pkg.HEADING_EAST
}
