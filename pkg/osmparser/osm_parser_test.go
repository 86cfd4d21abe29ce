package osmparser

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAcceptOsmWay(t *testing.T) {
	testCases := []struct {
		name string
		tags osm.Tags
		want bool
	}{
		{name: "named residential", tags: osm.Tags{{Key: "highway", Value: "residential"}, {Key: "name", Value: "Glenmont Avenue"}}, want: true},
		{name: "unnamed residential", tags: osm.Tags{{Key: "highway", Value: "residential"}}, want: false},
		{name: "named footway", tags: osm.Tags{{Key: "highway", Value: "footway"}, {Key: "name", Value: "a path"}}, want: false},
		{name: "building", tags: osm.Tags{{Key: "building", Value: "yes"}, {Key: "name", Value: "Royce Hall"}}, want: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, acceptOsmWay(&osm.Way{Tags: tt.tags}))
		})
	}
}

func TestAttractionName(t *testing.T) {
	name, ok := attractionName(osm.Tags{{Key: "amenity", Value: "cafe"}, {Key: "name", Value: "Diddy Riese"}})
	assert.True(t, ok)
	assert.Equal(t, "Diddy Riese", name)

	_, ok = attractionName(osm.Tags{{Key: "amenity", Value: "bench"}})
	assert.False(t, ok)

	_, ok = attractionName(osm.Tags{{Key: "name", Value: "Some Node"}})
	assert.False(t, ok)
}

func newTestParser() *OsmParser {
	p := NewOSMParser(zap.NewNop())
	p.acceptedNodeMap = map[int64]nodeCoord{
		1: {lat: 34.0, lon: -118.0},
		2: {lat: 34.0, lon: -117.99},
		3: {lat: 34.01, lon: -117.99},
	}
	p.ways = []osmWay{
		{name: "First Street", nodes: []int64{1, 2}},
		{name: "Second Street", nodes: []int64{2, 3, 4}}, // 4 lies outside the extract
	}
	return p
}

func TestBuildSegments(t *testing.T) {
	p := newTestParser()
	p.attractions = []attractionNode{
		{id: 1, name: "Start Cafe", coord: nodeCoord{lat: 34.0, lon: -118.0}},
		{id: 3, name: "End Museum", coord: nodeCoord{lat: 34.01, lon: -117.99}},
		// 0.0001 deg (~7 m) east of First Street
		{id: 99, name: "Kiosk", coord: nodeCoord{lat: 34.0001, lon: -117.995}},
		{id: 100, name: "Far Away", coord: nodeCoord{lat: 35.0, lon: -117.0}},
	}

	segments := p.buildSegments()
	require.Len(t, segments, 2)

	assert.Equal(t, "First Street", segments[0].StreetName)
	assert.Equal(t, "34.0000000", segments[0].GetStart().LatText)
	assert.Equal(t, "-117.9900000", segments[0].GetEnd().LonText)

	require.Len(t, segments[0].Attractions, 2)
	assert.Equal(t, "Start Cafe", segments[0].Attractions[0].Name)
	assert.Equal(t, "Kiosk", segments[0].Attractions[1].Name)

	require.Len(t, segments[1].Attractions, 1)
	assert.Equal(t, "End Museum", segments[1].Attractions[0].Name)
}

func TestBuildSegmentsWithoutSnapping(t *testing.T) {
	p := newTestParser()
	p.SetSnapRadius(0)
	p.attractions = []attractionNode{
		{id: 99, name: "Kiosk", coord: nodeCoord{lat: 34.0001, lon: -117.995}},
	}

	segments := p.buildSegments()
	require.Len(t, segments, 2)
	assert.Empty(t, segments[0].Attractions)
	assert.Empty(t, segments[1].Attractions)
}
