package guidance

import "github.com/lintang-b-s/poinav/pkg/datastructure"

type SegmentIndex interface {
	GetSegments(c datastructure.GeoCoord) []datastructure.StreetSegment
}
