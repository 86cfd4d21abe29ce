package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceEarthMiles(t *testing.T) {
	// one degree of latitude is ~69.09 miles on a 6371 km sphere
	d := DistanceEarthMiles(0, 0, 1, 0)
	assert.InDelta(t, 69.09, d, 0.01)

	assert.InDelta(t, 0.0, DistanceEarthMiles(34.05, -118.48, 34.05, -118.48), 1e-12)
	assert.InDelta(t, MilesToKm(d), CalculateHaversineDistance(0, 0, 1, 0), 1e-9)
}

func TestGreatCircleDistanceAgrees(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{name: "westwood", lat1: 34.0547000, lon1: -118.4794734, lat2: 34.0544590, lon2: -118.4801137},
		{name: "long haul", lat1: -7.55, lon1: 110.82, lat2: 51.5, lon2: -0.12},
		{name: "equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h := DistanceEarthMiles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			s := GreatCircleDistanceMiles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, h, s, 1e-6*h+1e-9)
		})
	}
}

func TestAngleOfLine(t *testing.T) {
	testCases := []struct {
		name string
		lat  float64
		lon  float64
		want float64
	}{
		{name: "east", lat: 0, lon: 1, want: 0},
		{name: "north", lat: 1, lon: 0, want: 90},
		{name: "west", lat: 0, lon: -1, want: 180},
		{name: "south", lat: -1, lon: 0, want: 270},
		{name: "northeast", lat: 1, lon: 1, want: 45},
		{name: "southeast", lat: -1, lon: 1, want: 315},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleOfLine(0, 0, tt.lat, tt.lon), 1e-9)
		})
	}
}

func TestAngleBetween2Lines(t *testing.T) {
	// heading east then north: a left turn
	left := AngleBetween2Lines(0, 0, 0, 1, 0, 1, 1, 1)
	assert.InDelta(t, 90, left, 1e-9)

	// heading east then south: a right turn
	right := AngleBetween2Lines(0, 0, 0, 1, 0, 1, -1, 1)
	assert.InDelta(t, 270, right, 1e-9)

	straight := AngleBetween2Lines(0, 0, 0, 1, 0, 1, 0, 2)
	assert.InDelta(t, 0, straight, 1e-9)
}

func TestBearingTo(t *testing.T) {
	assert.InDelta(t, 0, BearingTo(0, 0, 1, 0), 1e-9)
	assert.InDelta(t, 90, BearingTo(0, 0, 0, 1), 1e-9)
}

func TestPolylineRoundTrip(t *testing.T) {
	coords := []Coordinate{NewCoordinate(38.5, -120.2), NewCoordinate(40.7, -120.95), NewCoordinate(43.252, -126.453)}
	line := PolylineFromCoords(coords)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", line)

	decoded, err := CoordsFromPolyline(line)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assert.InDelta(t, 43.252, decoded[2].Lat, 1e-5)
}

func TestPointLineDistance(t *testing.T) {
	a := NewCoordinate(0, 0)
	b := NewCoordinate(0, 1)
	snap := NewCoordinate(0.01, 0.5)
	d := PointLineDistanceMiles(a, b, snap)
	assert.InDelta(t, DistanceEarthMiles(0, 0, 0.01, 0), d, 1e-3)
}
