package mapper

import (
	"strings"
	"sync"

	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
	"golang.org/x/text/cases"
)

type attractionEntry struct {
	name  string // as written in the map data
	coord datastructure.GeoCoord
}

// AttractionMapper resolves attraction names to coordinates, ignoring case.
type AttractionMapper struct {
	m    *datastructure.OrderedMap[string, attractionEntry]
	fold cases.Caser
	mu   sync.Mutex // guards fold, a Caser keeps state between calls
}

func NewAttractionMapper() *AttractionMapper {
	return &AttractionMapper{
		m:    datastructure.NewOrderedMapOf[string, attractionEntry](),
		fold: cases.Fold(),
	}
}

func (am *AttractionMapper) normalize(name string) string {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.fold.String(strings.TrimSpace(name))
}

// Init adds every attraction of every segment. on duplicate names the later one wins.
// calling Init again adds to the current entries, use Clear to start over.
func (am *AttractionMapper) Init(ml mapparser.Loader) {
	for i := 0; i < ml.GetNumSegments(); i++ {
		seg, ok := ml.GetSegment(i)
		if !ok {
			continue
		}
		for _, att := range seg.Attractions {
			am.m.Associate(am.normalize(att.Name), attractionEntry{
				name:  strings.TrimSpace(att.Name),
				coord: att.Coord,
			})
		}
	}
}

func (am *AttractionMapper) GetGeoCoord(attraction string) (datastructure.GeoCoord, bool) {
	e := am.m.Find(am.normalize(attraction))
	if e == nil {
		return datastructure.GeoCoord{}, false
	}
	return e.coord, true
}

func (am *AttractionMapper) Size() int {
	return am.m.Size()
}

// ForEach visits attractions in order of their normalized name. handle gets the name as
// written by the last definition of the attraction.
func (am *AttractionMapper) ForEach(handle func(name string, coord datastructure.GeoCoord) bool) {
	am.m.ForEach(func(_ string, e *attractionEntry) bool {
		return handle(e.name, e.coord)
	})
}

func (am *AttractionMapper) Clear() {
	am.m.Clear()
}
