package guidance

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/geo"
)

var ErrNoConnectingSegment = errors.New("no street segment connects consecutive path coordinates")

// DirectionBuilder turns a path of coordinates into turn-by-turn nav segments.
type DirectionBuilder struct {
	segments     SegmentIndex
	instructions []datastructure.NavSegment
	prevProceed  datastructure.NavSegment
	hasProceed   bool
}

func NewDirectionBuilder(segments SegmentIndex) *DirectionBuilder {
	return &DirectionBuilder{
		segments:     segments,
		instructions: make([]datastructure.NavSegment, 0),
	}
}

/*
GetDrivingDirections. path is ordered from start to destination.
every consecutive pair becomes one PROCEED, preceded by a TURN when the street changes.
a single coordinate path (start == destination) gives no instructions.
*/
func (db *DirectionBuilder) GetDrivingDirections(path []datastructure.GeoCoord) ([]datastructure.NavSegment, error) {
	db.instructions = make([]datastructure.NavSegment, 0, 2*len(path))
	db.hasProceed = false

	for i := 0; i+1 < len(path); i++ {
		if err := db.buildInstruction(path[i], path[i+1]); err != nil {
			return nil, err
		}
	}
	return db.instructions, nil
}

func (db *DirectionBuilder) buildInstruction(from, to datastructure.GeoCoord) error {
	street, ok := db.findStreetSegment(from, to)
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrNoConnectingSegment, from, to)
	}

	line := datastructure.NewGeoSegment(from, to)
	if db.hasProceed && db.prevProceed.GetStreetName() != street.StreetName {
		db.instructions = append(db.instructions,
			datastructure.NewTurnNavSegment(getTurnDirection(db.prevProceed.GetGeoSegment(), line), street.StreetName))
	}

	dist := geo.DistanceEarthMiles(from.Lat, from.Lon, to.Lat, to.Lon)
	proceed := datastructure.NewProceedNavSegment(getHeading(line), street.StreetName, dist, line)
	db.instructions = append(db.instructions, proceed)
	db.prevProceed, db.hasProceed = proceed, true
	return nil
}

// findStreetSegment. a segment incident to both a and b. one whose endpoints are exactly {a, b}
// is preferred, otherwise a and b lie on the same segment through an attraction.
func (db *DirectionBuilder) findStreetSegment(a, b datastructure.GeoCoord) (datastructure.StreetSegment, bool) {
	aSegs := db.segments.GetSegments(a)
	bSegs := db.segments.GetSegments(b)

	var (
		common datastructure.StreetSegment
		found  bool
	)
	for _, as := range aSegs {
		for _, bs := range bSegs {
			if !as.SameSegment(bs) {
				continue
			}
			if as.HasEndpoints(a, b) {
				return as, true
			}
			if !found {
				common, found = as, true
			}
		}
	}
	return common, found
}
