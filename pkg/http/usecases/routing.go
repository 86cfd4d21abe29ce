package usecases

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/poinav/pkg"
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/engine/routing"
	"github.com/lintang-b-s/poinav/pkg/spatialindex"
	"github.com/lintang-b-s/poinav/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

type routeKey struct {
	start       string
	destination string
}

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	routeCache   *lru.Cache[routeKey, datastructure.Route]
	nearbyLimit  int
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex,
	routeCacheSize, nearbyLimit int) (*RoutingService, error) {
	if routeCacheSize <= 0 {
		routeCacheSize = pkg.DEFAULT_ROUTE_CACHE_SIZE
	}
	if nearbyLimit <= 0 {
		nearbyLimit = pkg.DEFAULT_NEARBY_MAX
	}
	routeCache, err := lru.New[routeKey, datastructure.Route](routeCacheSize)
	if err != nil {
		return nil, err
	}
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialIndex,
		routeCache:   routeCache,
		nearbyLimit:  nearbyLimit,
	}, nil
}

func normalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Navigate. unknown attractions and unreachable destinations are ErrNotFound, with the routing
// sentinel (ErrBadSource, ErrBadDestination, ErrNoRoute) as the cause.
func (rs *RoutingService) Navigate(start, destination string) (datastructure.Route, error) {
	key := routeKey{start: normalizeName(start), destination: normalizeName(destination)}
	if route, ok := rs.routeCache.Get(key); ok {
		// the cached route carries the spelling of the request that filled the cache
		return datastructure.NewRoute(start, destination, route.GetDirections(), route.GetDistance(),
			route.GetPolyline()), nil
	}

	directions, res, err := rs.engine.Navigate(start, destination)
	if err != nil {
		rs.log.Error("navigation failed", zap.String("start", start),
			zap.String("destination", destination), zap.Error(err))
		return datastructure.Route{}, util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
	if res != pkg.NAV_SUCCESS {
		return datastructure.Route{}, util.WrapErrorf(routing.ResultError(res), util.ErrNotFound,
			"%s: %q to %q", res, start, destination)
	}

	route := datastructure.NewRoute(start, destination, directions, routing.TotalDistance(directions),
		routePolyline(directions))

	rs.routeCache.Add(key, route)
	return route, nil
}

// NearbyAttractions. radius in miles, 0 means the default radius.
func (rs *RoutingService) NearbyAttractions(lat, lon, radius float64) ([]spatialindex.NearbyAttraction, error) {
	if radius <= 0 {
		radius = pkg.DEFAULT_NEARBY_RADIUS
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "coordinate %f,%f out of range", lat, lon)
	}
	return rs.spatialIndex.SearchWithinRadius(lat, lon, radius, rs.nearbyLimit), nil
}
