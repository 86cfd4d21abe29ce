package mapper

import (
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
)

// SegmentMapper maps a coordinate to every street segment touching it, either as an
// endpoint or as the location of one of the segment's attractions.
type SegmentMapper struct {
	m *datastructure.OrderedMap[datastructure.GeoCoord, []datastructure.StreetSegment]
}

func NewSegmentMapper() *SegmentMapper {
	return &SegmentMapper{
		m: datastructure.NewOrderedMap[datastructure.GeoCoord, []datastructure.StreetSegment](datastructure.CompareGeoCoord),
	}
}

// Init indexes each segment under its start, its end, and each attraction coordinate that is
// not one of the endpoints. calling Init again adds to the current entries.
func (sm *SegmentMapper) Init(ml mapparser.Loader) {
	for i := 0; i < ml.GetNumSegments(); i++ {
		seg, ok := ml.GetSegment(i)
		if !ok {
			continue
		}
		start, end := seg.GetStart(), seg.GetEnd()
		sm.add(start, seg)
		if !end.Equal(start) {
			sm.add(end, seg)
		}

		for j, att := range seg.Attractions {
			if att.Coord.Equal(start) || att.Coord.Equal(end) {
				continue
			}
			if attractionSeen(seg.Attractions[:j], att.Coord) {
				continue
			}
			sm.add(att.Coord, seg)
		}
	}
}

func attractionSeen(atts []datastructure.Attraction, c datastructure.GeoCoord) bool {
	for _, a := range atts {
		if a.Coord.Equal(c) {
			return true
		}
	}
	return false
}

func (sm *SegmentMapper) add(c datastructure.GeoCoord, seg datastructure.StreetSegment) {
	if segs := sm.m.Find(c); segs != nil {
		*segs = append(*segs, seg)
		return
	}
	sm.m.Associate(c, []datastructure.StreetSegment{seg})
}

// GetSegments returns a copy of the segments associated with c, empty when c is unknown.
func (sm *SegmentMapper) GetSegments(c datastructure.GeoCoord) []datastructure.StreetSegment {
	segs := sm.m.Find(c)
	if segs == nil {
		return []datastructure.StreetSegment{}
	}
	out := make([]datastructure.StreetSegment, len(*segs))
	for i, s := range *segs {
		out[i] = s.Clone()
	}
	return out
}

// NumLocations is the number of distinct coordinates indexed.
func (sm *SegmentMapper) NumLocations() int {
	return sm.m.Size()
}

func (sm *SegmentMapper) Clear() {
	sm.m.Clear()
}
