package geo

import (
	"math"

	"github.com/lintang-b-s/poinav/pkg/util"
)

/*
BearingTo. initial bearing of edge (p1,p2), clockwise from north.
https://www.movable-type.co.uk/scripts/latlong.html
*/
func BearingTo(p1Lat, p1Lon, p2Lat, p2Lon float64) float64 {

	dLon := util.DegreeToRadians(p2Lon - p1Lon)

	lat1 := util.DegreeToRadians(p1Lat)
	lat2 := util.DegreeToRadians(p2Lat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	brng := math.Mod(util.RadiansToDegree(math.Atan2(y, x))+360, 360.0)

	return brng
}

/*
AngleOfLine. angle of the line start->end in degrees [0,360), counter-clockwise from east,
measured on the flat (lon, lat) plane.

	north = 90
	  |
	  |
	  +------ east = 0
*/
func AngleOfLine(startLat, startLon, endLat, endLon float64) float64 {
	angle := util.RadiansToDegree(math.Atan2(endLat-startLat, endLon-startLon))
	if angle < 0 {
		angle += 360
	}
	return angle
}

/*
AngleBetween2Lines. counter-clockwise angle in degrees [0,360) from the direction of line one to the
direction of line two. < 180 means line two bends to the left of line one.
*/
func AngleBetween2Lines(l1StartLat, l1StartLon, l1EndLat, l1EndLon,
	l2StartLat, l2StartLon, l2EndLat, l2EndLon float64) float64 {
	angle1 := math.Atan2(l1EndLat-l1StartLat, l1EndLon-l1StartLon)
	angle2 := math.Atan2(l2EndLat-l2StartLat, l2EndLon-l2StartLon)
	result := util.RadiansToDegree(angle2 - angle1)
	if result < 0 {
		result += 360
	}
	if result >= 360 {
		result -= 360
	}
	return result
}
