package routing

import (
	"github.com/lintang-b-s/poinav/pkg"
	da "github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/guidance"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
	"github.com/lintang-b-s/poinav/pkg/mapper"
	"github.com/lintang-b-s/poinav/pkg/util"
	"go.uber.org/zap"
)

/*
Navigator. resolves attraction names, searches the street network with A*, and formats the path as
turn-by-turn directions.

both indices are only written by LoadMapData. every Navigate call owns its own search state, so
concurrent Navigate calls are safe once loading has finished.
*/
type Navigator struct {
	attractions *mapper.AttractionMapper
	segments    *mapper.SegmentMapper
	logger      *zap.Logger

	maxSettledNodes int
}

type NavigatorOption func(*Navigator)

// WithMaxSettledNodes bounds the number of coordinates one search may settle. 0 means unbounded.
func WithMaxSettledNodes(n int) NavigatorOption {
	return func(nav *Navigator) {
		if n < 0 {
			n = 0
		}
		nav.maxSettledNodes = n
	}
}

func NewNavigator(logger *zap.Logger, opts ...NavigatorOption) *Navigator {
	nav := &Navigator{
		attractions: mapper.NewAttractionMapper(),
		segments:    mapper.NewSegmentMapper(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(nav)
	}
	return nav
}

// LoadMapData indexes every segment of ml. loading twice adds to the indices.
func (n *Navigator) LoadMapData(ml mapparser.Loader) {
	n.attractions.Init(ml)
	n.segments.Init(ml)
	n.logger.Info("map data loaded",
		zap.Int("segments", ml.GetNumSegments()),
		zap.Int("attractions", n.attractions.Size()),
		zap.Int("locations", n.segments.NumLocations()))
}

/*
Navigate. directions from the start attraction to the destination attraction.

the directions are nil unless the result is NAV_SUCCESS. the start is resolved before the
destination, so an unknown start always yields NAV_BAD_SOURCE. the error is non-nil only when the
found path can't be turned into directions, which means the indices are inconsistent.
*/
func (n *Navigator) Navigate(start, dest string) ([]da.NavSegment, pkg.NavResult, error) {
	begin, ok := n.attractions.GetGeoCoord(start)
	if !ok {
		return nil, pkg.NAV_BAD_SOURCE, nil
	}
	end, ok := n.attractions.GetGeoCoord(dest)
	if !ok {
		return nil, pkg.NAV_BAD_DESTINATION, nil
	}

	as := NewAstar(n.segments, n.maxSettledNodes)
	path, _, found := as.ShortestPath(begin, end)
	if !found {
		if as.BoundReached() {
			n.logger.Warn("search stopped at settled node bound",
				zap.String("start", start), zap.String("destination", dest),
				zap.Int("max_settled_nodes", n.maxSettledNodes))
		}
		return nil, pkg.NAV_NO_ROUTE, nil
	}

	directions, err := guidance.NewDirectionBuilder(n.segments).GetDrivingDirections(path)
	if err != nil {
		n.logger.Error("failed to build directions", zap.String("start", start),
			zap.String("destination", dest), zap.Error(err))
		return nil, pkg.NAV_NO_ROUTE, util.WrapErrorf(ErrInconsistentPath, util.ErrInternalServerError,
			"%v", err)
	}

	if pkg.DEBUG {
		n.logger.Sugar().Debugf("route %s -> %s: %d coordinates, %d settled", start, dest, len(path),
			as.GetNumSettledNodes())
	}
	return directions, pkg.NAV_SUCCESS, nil
}

func (n *Navigator) GetAttractionMapper() *mapper.AttractionMapper {
	return n.attractions
}

func (n *Navigator) GetSegmentMapper() *mapper.SegmentMapper {
	return n.segments
}

// TotalDistance sums the proceed distances of directions, in miles.
func TotalDistance(directions []da.NavSegment) float64 {
	total := 0.0
	for _, d := range directions {
		total += d.GetDistance()
	}
	return total
}
