package datastructure

// Route is a successful navigation result.
type Route struct {
	start       string
	destination string
	directions  []NavSegment
	distance    float64 // miles
	polyline    string
}

func NewRoute(start, destination string, directions []NavSegment, distance float64, polyline string) Route {
	return Route{
		start:       start,
		destination: destination,
		directions:  directions,
		distance:    distance,
		polyline:    polyline,
	}
}

func (r Route) GetStart() string {
	return r.start
}

func (r Route) GetDestination() string {
	return r.destination
}

func (r Route) GetDirections() []NavSegment {
	return r.directions
}

func (r Route) GetDistance() float64 {
	return r.distance
}

func (r Route) GetPolyline() string {
	return r.polyline
}

func (r Route) PathCoords() []GeoCoord {
	return NavPathCoords(r.directions)
}

// NavPathCoords. the travelled coordinates of directions, start first.
func NavPathCoords(directions []NavSegment) []GeoCoord {
	coords := make([]GeoCoord, 0, len(directions)+1)
	for _, d := range directions {
		if d.IsTurn() {
			continue
		}
		gs := d.GetGeoSegment()
		if len(coords) == 0 {
			coords = append(coords, gs.Start)
		}
		coords = append(coords, gs.End)
	}
	return coords
}
