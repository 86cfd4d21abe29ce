package routing

import (
	da "github.com/lintang-b-s/poinav/pkg/datastructure"
)

type SegmentIndex interface {
	GetSegments(c da.GeoCoord) []da.StreetSegment
}
