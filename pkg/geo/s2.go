package geo

import (
	"github.com/golang/geo/s2"
)

// GreatCircleDistanceMiles uses s2 spherical geometry, agrees with DistanceEarthMiles to float precision.
func GreatCircleDistanceMiles(latOne, longOne, latTwo, longTwo float64) float64 {
	a := s2.LatLngFromDegrees(latOne, longOne)
	b := s2.LatLngFromDegrees(latTwo, longTwo)
	return KmToMiles(a.Distance(b).Radians() * earthRadiusKM)
}

// ProjectPointToLine returns the closest point to snap on the great circle arc a-b.
func ProjectPointToLine(pointA, pointB, snap Coordinate) Coordinate {
	pointAS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(pointA.Lat, pointA.Lon))
	pointBS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(pointB.Lat, pointB.Lon))
	snapS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(snap.Lat, snap.Lon))
	projection := s2.Project(snapS2, pointAS2, pointBS2)
	projectLatLng := s2.LatLngFromPoint(projection)
	return NewCoordinate(projectLatLng.Lat.Degrees(), projectLatLng.Lng.Degrees())
}

// PointLineDistanceMiles distance from snap to arc a-b in miles.
func PointLineDistanceMiles(pointA, pointB, snap Coordinate) float64 {
	p := ProjectPointToLine(pointA, pointB, snap)
	return GreatCircleDistanceMiles(snap.Lat, snap.Lon, p.Lat, p.Lon)
}
