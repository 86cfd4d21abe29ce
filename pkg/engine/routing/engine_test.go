package routing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lintang-b-s/poinav/pkg"
	da "github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gc(t *testing.T, lat, lon string) da.GeoCoord {
	t.Helper()
	c, err := da.NewGeoCoord(lat, lon)
	require.NoError(t, err)
	return c
}

// 0.0144730° of latitude (or longitude on the equator) is one mile
func scenarioLoader(t *testing.T) mapparser.SliceLoader {
	a := gc(t, "0.0000000", "0.0000000")
	b := gc(t, "0.0000000", "0.0144730")
	c := gc(t, "0.0000000", "0.0289460")
	d := gc(t, "0.0144730", "0.0289460")

	return mapparser.SliceLoader{
		da.NewStreetSegment("First", a, b, da.NewAttraction("Start", a)),
		da.NewStreetSegment("First", b, c),
		da.NewStreetSegment("Second", c, d, da.NewAttraction("End", d)),
	}
}

func newNavigator(t *testing.T, ml mapparser.Loader, opts ...NavigatorOption) *Navigator {
	nav := NewNavigator(zap.NewNop(), opts...)
	nav.LoadMapData(ml)
	return nav
}

func TestNavigateScenario(t *testing.T) {
	nav := newNavigator(t, scenarioLoader(t))

	dirs, res, err := nav.Navigate("start", "END")
	require.NoError(t, err)
	require.Equal(t, pkg.NAV_SUCCESS, res)
	require.Len(t, dirs, 4)

	assert.Equal(t, pkg.PROCEED, dirs[0].GetCommand())
	assert.Equal(t, "First", dirs[0].GetStreetName())
	assert.Equal(t, pkg.HEADING_EAST, dirs[0].GetDirection())
	assert.InDelta(t, 1.0, dirs[0].GetDistance(), 0.001)

	assert.Equal(t, pkg.PROCEED, dirs[1].GetCommand())
	assert.Equal(t, "First", dirs[1].GetStreetName())
	assert.Equal(t, pkg.HEADING_EAST, dirs[1].GetDirection())
	assert.InDelta(t, 1.0, dirs[1].GetDistance(), 0.001)

	assert.Equal(t, pkg.TURN, dirs[2].GetCommand())
	assert.Equal(t, pkg.TURN_LEFT, dirs[2].GetDirection())
	assert.Equal(t, "Second", dirs[2].GetStreetName())

	assert.Equal(t, pkg.PROCEED, dirs[3].GetCommand())
	assert.Equal(t, "Second", dirs[3].GetStreetName())
	assert.Equal(t, pkg.HEADING_NORTH, dirs[3].GetDirection())
	assert.InDelta(t, 1.0, dirs[3].GetDistance(), 0.001)

	assert.InDelta(t, 3.0, TotalDistance(dirs), 0.003)
	assert.Equal(t, "Turn left onto Second", dirs[2].String())
}

func TestNavigateResults(t *testing.T) {
	nav := newNavigator(t, scenarioLoader(t))

	testCases := []struct {
		name  string
		start string
		dest  string
		want  pkg.NavResult
	}{
		{name: "unknown start", start: "Nowhere", dest: "End", want: pkg.NAV_BAD_SOURCE},
		{name: "both unknown reports source", start: "Nowhere", dest: "Elsewhere", want: pkg.NAV_BAD_SOURCE},
		{name: "unknown destination", start: "Start", dest: "Elsewhere", want: pkg.NAV_BAD_DESTINATION},
		{name: "success", start: "Start", dest: "End", want: pkg.NAV_SUCCESS},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			dirs, res, err := nav.Navigate(tt.start, tt.dest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
			if tt.want != pkg.NAV_SUCCESS {
				assert.Nil(t, dirs)
				assert.Error(t, ResultError(res))
			} else {
				assert.NoError(t, ResultError(res))
			}
		})
	}
}

func TestNavigateSameAttraction(t *testing.T) {
	nav := newNavigator(t, scenarioLoader(t))
	dirs, res, err := nav.Navigate("Start", "start")
	require.NoError(t, err)
	assert.Equal(t, pkg.NAV_SUCCESS, res)
	assert.Empty(t, dirs)
}

func TestNavigateNoRoute(t *testing.T) {
	ml := append(scenarioLoader(t),
		da.NewStreetSegment("Island Road", gc(t, "10", "10"), gc(t, "10", "10.01"),
			da.NewAttraction("Lighthouse", gc(t, "10", "10.01"))))
	nav := newNavigator(t, ml)

	dirs, res, err := nav.Navigate("Start", "Lighthouse")
	require.NoError(t, err)
	assert.Equal(t, pkg.NAV_NO_ROUTE, res)
	assert.Nil(t, dirs)
	assert.ErrorIs(t, ResultError(res), ErrNoRoute)
}

// two ways from S to T, the one through A is shorter
func diamondLoader(t *testing.T) mapparser.SliceLoader {
	s := gc(t, "0", "0")
	a := gc(t, "0.001", "0.01")
	b := gc(t, "0.01", "0.01")
	tt := gc(t, "0", "0.02")

	return mapparser.SliceLoader{
		da.NewStreetSegment("Long Road", s, b, da.NewAttraction("Home", s)),
		da.NewStreetSegment("Long Road", b, tt),
		da.NewStreetSegment("Short Road", s, a),
		da.NewStreetSegment("Short Road", tt, a, da.NewAttraction("Work", tt)),
	}
}

func TestNavigateOptimal(t *testing.T) {
	nav := newNavigator(t, diamondLoader(t))

	dirs, res, err := nav.Navigate("Home", "Work")
	require.NoError(t, err)
	require.Equal(t, pkg.NAV_SUCCESS, res)
	require.Len(t, dirs, 2)
	for _, d := range dirs {
		assert.Equal(t, "Short Road", d.GetStreetName())
	}

	s, a, tt := gc(t, "0", "0"), gc(t, "0.001", "0.01"), gc(t, "0", "0.02")
	as := NewAstar(nav.GetSegmentMapper(), 0)
	_, want, found := as.ShortestPath(s, tt)
	require.True(t, found)
	assert.InDelta(t, want, TotalDistance(dirs), 1e-9)

	viaA := TotalDistance(dirs)
	assert.InDelta(t, viaA, distanceOf(s, a)+distanceOf(a, tt), 1e-9)
	assert.Less(t, viaA, distanceOf(s, gc(t, "0.01", "0.01"))+distanceOf(gc(t, "0.01", "0.01"), tt))
}

func distanceOf(a, b da.GeoCoord) float64 {
	as := Astar{target: b}
	return as.heuristic(a)
}

func TestNavigateDestinationInsideSegment(t *testing.T) {
	s := gc(t, "0", "0")
	e := gc(t, "0", "0.02")
	mid := gc(t, "0", "0.01")
	nav := newNavigator(t, mapparser.SliceLoader{
		da.NewStreetSegment("Main", s, e, da.NewAttraction("Gate", s), da.NewAttraction("Museum", mid)),
	})

	dirs, res, err := nav.Navigate("gate", "museum")
	require.NoError(t, err)
	require.Equal(t, pkg.NAV_SUCCESS, res)
	require.Len(t, dirs, 1)
	assert.True(t, dirs[0].GetGeoSegment().End.Equal(mid))
	assert.InDelta(t, distanceOf(s, mid), dirs[0].GetDistance(), 1e-12)
}

func TestNavigateDeterministic(t *testing.T) {
	nav := newNavigator(t, diamondLoader(t))

	first, _, err := nav.Navigate("Home", "Work")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, _, err := nav.Navigate("Home", "Work")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNavigateConcurrent(t *testing.T) {
	nav := newNavigator(t, scenarioLoader(t))

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dirs, res, err := nav.Navigate("Start", "End")
			if err != nil || res != pkg.NAV_SUCCESS || len(dirs) != 4 {
				errs <- fmt.Errorf("unexpected result %v %d %v", res, len(dirs), err)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestNavigateSettledBound(t *testing.T) {
	nav := newNavigator(t, scenarioLoader(t), WithMaxSettledNodes(2))
	dirs, res, err := nav.Navigate("Start", "End")
	require.NoError(t, err)
	assert.Equal(t, pkg.NAV_NO_ROUTE, res)
	assert.Nil(t, dirs)

	unbounded := newNavigator(t, scenarioLoader(t), WithMaxSettledNodes(-1))
	_, res, err = unbounded.Navigate("Start", "End")
	require.NoError(t, err)
	assert.Equal(t, pkg.NAV_SUCCESS, res)
}

func TestAstarSettledCount(t *testing.T) {
	nav := newNavigator(t, scenarioLoader(t))
	as := NewAstar(nav.GetSegmentMapper(), 0)
	path, dist, found := as.ShortestPath(gc(t, "0.0000000", "0.0000000"), gc(t, "0.0144730", "0.0289460"))
	require.True(t, found)
	assert.Len(t, path, 4)
	assert.InDelta(t, 3.0, dist, 0.003)
	assert.Equal(t, 4, as.GetNumSettledNodes())
	assert.False(t, as.BoundReached())
}
