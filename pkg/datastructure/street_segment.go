package datastructure

type Attraction struct {
	Name  string   `json:"name"`
	Coord GeoCoord `json:"coord"`
}

func NewAttraction(name string, coord GeoCoord) Attraction {
	return Attraction{Name: name, Coord: coord}
}

// StreetSegment is one record of the map file. it is stored start->end but can be
// driven in both directions.
type StreetSegment struct {
	StreetName  string
	Segment     GeoSegment
	Attractions []Attraction
}

func NewStreetSegment(streetName string, start, end GeoCoord, attractions ...Attraction) StreetSegment {
	return StreetSegment{
		StreetName:  streetName,
		Segment:     NewGeoSegment(start, end),
		Attractions: attractions,
	}
}

func (s StreetSegment) GetStart() GeoCoord {
	return s.Segment.Start
}

func (s StreetSegment) GetEnd() GeoCoord {
	return s.Segment.End
}

// HasEndpoints is true when {a,b} are the two endpoints of s, in either order.
func (s StreetSegment) HasEndpoints(a, b GeoCoord) bool {
	return (s.Segment.Start.Equal(a) && s.Segment.End.Equal(b)) ||
		(s.Segment.Start.Equal(b) && s.Segment.End.Equal(a))
}

// HasAttractionAt is true when one of the attractions of s sits exactly at c.
func (s StreetSegment) HasAttractionAt(c GeoCoord) bool {
	for _, a := range s.Attractions {
		if a.Coord.Equal(c) {
			return true
		}
	}
	return false
}

// SameSegment compares the street name and the endpoint pair.
func (s StreetSegment) SameSegment(o StreetSegment) bool {
	return s.StreetName == o.StreetName && s.Segment.SameLine(o.Segment)
}

func (s StreetSegment) Clone() StreetSegment {
	attractions := make([]Attraction, len(s.Attractions))
	copy(attractions, s.Attractions)
	s.Attractions = attractions
	return s
}
