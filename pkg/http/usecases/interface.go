package usecases

import (
	"github.com/lintang-b-s/poinav/pkg"
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/spatialindex"
)

type RoutingEngine interface {
	Navigate(start, dest string) ([]datastructure.NavSegment, pkg.NavResult, error)
}

type SpatialIndex interface {
	SearchWithinRadius(qLat, qLon, radius float64, limit int) []spatialindex.NearbyAttraction
}
