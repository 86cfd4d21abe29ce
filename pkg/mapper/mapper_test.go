package mapper

import (
	"testing"

	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(t *testing.T, lat, lon string) datastructure.GeoCoord {
	t.Helper()
	c, err := datastructure.NewGeoCoord(lat, lon)
	require.NoError(t, err)
	return c
}

func testLoader(t *testing.T) mapparser.SliceLoader {
	a := coord(t, "34.0000000", "-118.0000000")
	b := coord(t, "34.0000000", "-117.9825000")
	c := coord(t, "34.0144730", "-117.9825000")
	mid := coord(t, "34.0072365", "-117.9825000")

	return mapparser.SliceLoader{
		datastructure.NewStreetSegment("First Street", a, b,
			datastructure.NewAttraction("Corner Cafe", a)),
		datastructure.NewStreetSegment("Second Street", b, c,
			datastructure.NewAttraction("City Library", mid),
			datastructure.NewAttraction("Tower Records", c)),
	}
}

func TestAttractionMapperCaseInsensitive(t *testing.T) {
	am := NewAttractionMapper()
	am.Init(testLoader(t))
	require.Equal(t, 3, am.Size())

	testCases := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{name: "exact", query: "City Library", want: "34.0072365", found: true},
		{name: "upper", query: "CITY LIBRARY", want: "34.0072365", found: true},
		{name: "lower", query: "tower records", want: "34.0144730", found: true},
		{name: "surrounding space", query: "  Corner Cafe ", want: "34.0000000", found: true},
		{name: "unknown", query: "Nowhere", found: false},
		{name: "prefix only", query: "City", found: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			gc, ok := am.GetGeoCoord(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, gc.LatText)
			}
		})
	}
}

func TestAttractionMapperLastWriteWins(t *testing.T) {
	a := coord(t, "1", "1")
	b := coord(t, "2", "2")
	am := NewAttractionMapper()
	am.Init(mapparser.SliceLoader{
		datastructure.NewStreetSegment("S", a, b,
			datastructure.NewAttraction("Museum", a),
			datastructure.NewAttraction("MUSEUM", b)),
	})
	assert.Equal(t, 1, am.Size())
	gc, ok := am.GetGeoCoord("museum")
	require.True(t, ok)
	assert.True(t, gc.Equal(b))

	am.ForEach(func(name string, coord datastructure.GeoCoord) bool {
		assert.Equal(t, "MUSEUM", name)
		assert.True(t, coord.Equal(b))
		return true
	})
}

func TestAttractionMapperReinitAndClear(t *testing.T) {
	am := NewAttractionMapper()
	am.Init(testLoader(t))
	am.Init(testLoader(t))
	assert.Equal(t, 3, am.Size())

	names := make([]string, 0)
	am.ForEach(func(name string, _ datastructure.GeoCoord) bool {
		names = append(names, name)
		return true
	})
	assert.Equal(t, []string{"City Library", "Corner Cafe", "Tower Records"}, names)

	am.Clear()
	assert.Equal(t, 0, am.Size())
	_, ok := am.GetGeoCoord("City Library")
	assert.False(t, ok)
}

func TestSegmentMapper(t *testing.T) {
	sm := NewSegmentMapper()
	sm.Init(testLoader(t))

	// a, b, c and the library (the cafe and the records store sit on endpoints)
	assert.Equal(t, 4, sm.NumLocations())

	b := coord(t, "34.0000000", "-117.9825000")
	segs := sm.GetSegments(b)
	require.Len(t, segs, 2)
	assert.Equal(t, "First Street", segs[0].StreetName)
	assert.Equal(t, "Second Street", segs[1].StreetName)

	mid := coord(t, "34.0072365", "-117.9825000")
	segs = sm.GetSegments(mid)
	require.Len(t, segs, 1)
	assert.Equal(t, "Second Street", segs[0].StreetName)

	c := coord(t, "34.0144730", "-117.9825000")
	assert.Len(t, sm.GetSegments(c), 1)
}

func TestSegmentMapperUnknownCoordinate(t *testing.T) {
	sm := NewSegmentMapper()
	sm.Init(testLoader(t))

	segs := sm.GetSegments(coord(t, "10", "10"))
	assert.NotNil(t, segs)
	assert.Empty(t, segs)

	// same number, different text
	segs = sm.GetSegments(coord(t, "34.0", "-117.9825000"))
	assert.Empty(t, segs)
}

func TestSegmentMapperReturnsCopy(t *testing.T) {
	sm := NewSegmentMapper()
	sm.Init(testLoader(t))

	mid := coord(t, "34.0072365", "-117.9825000")
	segs := sm.GetSegments(mid)
	segs[0].StreetName = "changed"
	segs[0].Attractions[0].Name = "changed"

	again := sm.GetSegments(mid)
	assert.Equal(t, "Second Street", again[0].StreetName)
	assert.Equal(t, "City Library", again[0].Attractions[0].Name)
}

func TestSegmentMapperClear(t *testing.T) {
	sm := NewSegmentMapper()
	sm.Init(testLoader(t))
	sm.Clear()
	assert.Equal(t, 0, sm.NumLocations())
	assert.Empty(t, sm.GetSegments(coord(t, "34.0000000", "-117.9825000")))
}
