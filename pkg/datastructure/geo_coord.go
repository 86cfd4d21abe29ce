package datastructure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GeoCoord is a map point identified by the exact text it was read from.
// Two coordinates are equal iff both texts match, whatever they parse to.
type GeoCoord struct {
	LatText string  `json:"-"`
	LonText string  `json:"-"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func NewGeoCoord(latText, lonText string) (GeoCoord, error) {
	latText = strings.TrimSpace(latText)
	lonText = strings.TrimSpace(lonText)
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return GeoCoord{}, fmt.Errorf("invalid latitude %q: %w", latText, err)
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		return GeoCoord{}, fmt.Errorf("invalid longitude %q: %w", lonText, err)
	}
	// NaN compares false both ways and would break the tree key order.
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return GeoCoord{}, fmt.Errorf("coordinate %q, %q is not a finite number", latText, lonText)
	}
	if lat < -90 || lat > 90 {
		return GeoCoord{}, fmt.Errorf("latitude %q out of range", latText)
	}
	if lon < -180 || lon > 180 {
		return GeoCoord{}, fmt.Errorf("longitude %q out of range", lonText)
	}
	return GeoCoord{
		LatText: latText,
		LonText: lonText,
		Lat:     lat,
		Lon:     lon,
	}, nil
}

// NewGeoCoordFromFloat renders lat/lon with a fixed number of decimals, so the same
// float always yields the same text key.
func NewGeoCoordFromFloat(lat, lon float64, precision int) GeoCoord {
	return GeoCoord{
		LatText: strconv.FormatFloat(lat, 'f', precision, 64),
		LonText: strconv.FormatFloat(lon, 'f', precision, 64),
		Lat:     lat,
		Lon:     lon,
	}
}

func (c GeoCoord) GetLat() float64 {
	return c.Lat
}

func (c GeoCoord) GetLon() float64 {
	return c.Lon
}

func (c GeoCoord) Equal(o GeoCoord) bool {
	return c.LatText == o.LatText && c.LonText == o.LonText
}

// Compare gives GeoCoord a total order for tree keys: latitude, then longitude,
// then the raw text so that "1.0" and "1.00" stay distinct keys.
func (c GeoCoord) Compare(o GeoCoord) int {
	if c.Equal(o) {
		return 0
	}
	switch {
	case c.Lat < o.Lat:
		return -1
	case c.Lat > o.Lat:
		return 1
	case c.Lon < o.Lon:
		return -1
	case c.Lon > o.Lon:
		return 1
	}
	if r := strings.Compare(c.LatText, o.LatText); r != 0 {
		return r
	}
	return strings.Compare(c.LonText, o.LonText)
}

func CompareGeoCoord(a, b GeoCoord) int {
	return a.Compare(b)
}

func (c GeoCoord) String() string {
	return c.LatText + ", " + c.LonText
}

// GeoSegment is a directed line between two coordinates.
type GeoSegment struct {
	Start GeoCoord `json:"start"`
	End   GeoCoord `json:"end"`
}

func NewGeoSegment(start, end GeoCoord) GeoSegment {
	return GeoSegment{Start: start, End: end}
}

func (s GeoSegment) Reverse() GeoSegment {
	return GeoSegment{Start: s.End, End: s.Start}
}

// SameLine reports whether both segments connect the same ordered endpoints.
func (s GeoSegment) SameLine(o GeoSegment) bool {
	return s.Start.Equal(o.Start) && s.End.Equal(o.End)
}
