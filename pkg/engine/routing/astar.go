package routing

import (
	da "github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/geo"
	"github.com/lintang-b-s/poinav/pkg/util"
)

/*
Astar. A* over the implicit graph whose vertices are segment endpoints and attraction coordinates.
edge weight and heuristic are both the great circle distance in miles, the heuristic never
overestimates, so the first time the destination is extracted its distance is optimal.

there is no decrease-key: an improved vertex is pushed again and the stale entry is skipped when it is
extracted because the vertex is already settled.
*/
type Astar struct {
	segments SegmentIndex

	info *da.OrderedMap[da.GeoCoord, vertexInfo]
	pq   *da.MinHeap[da.GeoCoord]

	target          da.GeoCoord
	maxSettledNodes int
	numSettledNodes int
	boundReached    bool
}

func NewAstar(segments SegmentIndex, maxSettledNodes int) *Astar {
	return &Astar{
		segments:        segments,
		info:            da.NewOrderedMap[da.GeoCoord, vertexInfo](da.CompareGeoCoord),
		pq:              da.NewFourAryHeap[da.GeoCoord](),
		maxSettledNodes: maxSettledNodes,
	}
}

func (as *Astar) heuristic(c da.GeoCoord) float64 {
	return geo.DistanceEarthMiles(c.Lat, c.Lon, as.target.Lat, as.target.Lon)
}

// ShortestPath returns the coordinates from s to t (both included) and the path length in miles.
// found is false when t is unreachable, or when the settled node bound was hit.
func (as *Astar) ShortestPath(s, t da.GeoCoord) (path []da.GeoCoord, dist float64, found bool) {
	as.target = t
	as.info.Clear()
	as.pq.Clear()
	as.numSettledNodes = 0
	as.boundReached = false

	as.info.Associate(s, newStartInfo())
	h := as.heuristic(s)
	as.pq.Insert(da.NewPriorityQueueNodeWithTie(h, h, s))

	for !as.pq.IsEmpty() {
		node, _ := as.pq.ExtractMin()
		u := node.GetItem()
		uInfo := as.info.Find(u)
		if uInfo.isSettled() {
			continue
		}
		uInfo.settle()
		as.numSettledNodes++

		if u.Equal(t) {
			return as.retrievePath(t), uInfo.getDist(), true
		}

		if as.maxSettledNodes > 0 && as.numSettledNodes >= as.maxSettledNodes {
			as.boundReached = true
			return nil, 0, false
		}

		for _, seg := range as.segments.GetSegments(u) {
			if seg.HasAttractionAt(t) {
				as.relax(u, uInfo.getDist(), t)
			}
			as.relax(u, uInfo.getDist(), seg.GetStart())
			as.relax(u, uInfo.getDist(), seg.GetEnd())
		}
	}

	return nil, 0, false
}

// relax. v is updated when undiscovered, or unsettled and reached with a strictly shorter distance.
func (as *Astar) relax(u da.GeoCoord, uDist float64, v da.GeoCoord) {
	newDist := uDist + geo.DistanceEarthMiles(u.Lat, u.Lon, v.Lat, v.Lon)

	vInfo := as.info.Find(v)
	if vInfo != nil && (vInfo.isSettled() || newDist >= vInfo.getDist()) {
		return
	}

	as.info.Associate(v, newVertexInfo(u, newDist))
	h := as.heuristic(v)
	// ties on f go to the entry closer to the target
	as.pq.Insert(da.NewPriorityQueueNodeWithTie(newDist+h, h, v))
}

func (as *Astar) retrievePath(t da.GeoCoord) []da.GeoCoord {
	path := make([]da.GeoCoord, 0)
	cur := t
	for {
		path = append(path, cur)
		curInfo := as.info.Find(cur)
		if !curInfo.hasPrev {
			break
		}
		cur = curInfo.prev
	}
	return util.ReverseG(path)
}

func (as *Astar) GetNumSettledNodes() int {
	return as.numSettledNodes
}

func (as *Astar) BoundReached() bool {
	return as.boundReached
}
