package osmparser

import (
	"context"
	"io"
	"math"
	"os"

	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/geo"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

/*
OsmParser. turns an openstreetmap pbf extract into street segments.

every named highway way becomes one segment per consecutive node pair. a named node carrying an
attraction key (tourism, amenity, shop, ...) becomes an attraction of the segment that starts at it,
or of the nearest segment within the snap radius if the node is not part of any accepted way.
*/
type OsmParser struct {
	ways            []osmWay
	wayNodeMap      map[int64]struct{}
	acceptedNodeMap map[int64]nodeCoord
	attractions     []attractionNode
	snapRadius      float64
	logger          *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		ways:            make([]osmWay, 0),
		wayNodeMap:      make(map[int64]struct{}),
		acceptedNodeMap: make(map[int64]nodeCoord),
		attractions:     make([]attractionNode, 0),
		snapRadius:      defaultSnapRadiusMiles,
		logger:          logger,
	}
}

// SetSnapRadius in miles. 0 keeps only attractions that lie on a street.
func (p *OsmParser) SetSnapRadius(radiusMiles float64) {
	p.snapRadius = radiusMiles
}

func (p *OsmParser) Parse(ctx context.Context, mapFile string) ([]datastructure.StreetSegment, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := p.scanWays(ctx, f); err != nil {
		return nil, err
	}

	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}

	if err := p.scanNodes(ctx, f); err != nil {
		return nil, err
	}

	segments := p.buildSegments()
	p.logger.Sugar().Infof("built %d street segments from %d ways", len(segments), len(p.ways))
	return segments, nil
}

func (p *OsmParser) scanWays(ctx context.Context, r io.Reader) error {
	scanner := osmpbf.New(ctx, r, 0)
	// must not be parallel
	defer scanner.Close()

	scanner.SkipNodes = true
	scanner.SkipRelations = true

	countWays := 0
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok || len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}
		if (countWays+1)%50000 == 0 {
			p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		w := osmWay{
			name:  way.Tags.Find("name"),
			nodes: make([]int64, 0, len(way.Nodes)),
		}
		for _, node := range way.Nodes {
			w.nodes = append(w.nodes, int64(node.ID))
			p.wayNodeMap[int64(node.ID)] = struct{}{}
		}
		p.ways = append(p.ways, w)
	}
	return scanner.Err()
}

func (p *OsmParser) scanNodes(ctx context.Context, r io.Reader) error {
	scanner := osmpbf.New(ctx, r, 0)
	defer scanner.Close()

	scanner.SkipWays = true
	scanner.SkipRelations = true

	countNodes := 0
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if (countNodes+1)%500000 == 0 {
			p.logger.Sugar().Infof("processing openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++

		coord := nodeCoord{lat: node.Lat, lon: node.Lon}
		if _, ok := p.wayNodeMap[int64(node.ID)]; ok {
			p.acceptedNodeMap[int64(node.ID)] = coord
		}

		if name, ok := attractionName(node.Tags); ok {
			p.attractions = append(p.attractions, attractionNode{
				id:    int64(node.ID),
				name:  name,
				coord: coord,
			})
		}
	}
	return scanner.Err()
}

func (p *OsmParser) buildSegments() []datastructure.StreetSegment {
	segments := make([]datastructure.StreetSegment, 0)
	// osm node id -> index of the segment that starts (or, for the last node, ends) at it
	nodeSegment := make(map[int64]int)

	for _, way := range p.ways {
		first := len(segments)
		for i := 0; i+1 < len(way.nodes); i++ {
			from, okFrom := p.acceptedNodeMap[way.nodes[i]]
			to, okTo := p.acceptedNodeMap[way.nodes[i+1]]
			if !okFrom || !okTo {
				// node outside the extract bounds
				continue
			}
			if from == to {
				continue
			}
			segments = append(segments, datastructure.NewStreetSegment(way.name, from.geoCoord(), to.geoCoord()))
			if _, ok := nodeSegment[way.nodes[i]]; !ok {
				nodeSegment[way.nodes[i]] = len(segments) - 1
			}
		}
		if len(segments) > first {
			last := way.nodes[len(way.nodes)-1]
			if _, ok := nodeSegment[last]; !ok {
				nodeSegment[last] = len(segments) - 1
			}
		}
	}

	var tr rtree.RTreeG[int]
	if p.snapRadius > 0 {
		for i, seg := range segments {
			start, end := seg.GetStart(), seg.GetEnd()
			tr.Insert(
				[2]float64{math.Min(start.Lon, end.Lon), math.Min(start.Lat, end.Lat)},
				[2]float64{math.Max(start.Lon, end.Lon), math.Max(start.Lat, end.Lat)},
				i,
			)
		}
	}

	attached, snapped := 0, 0
	for _, att := range p.attractions {
		attraction := datastructure.NewAttraction(att.name, att.coord.geoCoord())
		if idx, ok := nodeSegment[att.id]; ok {
			segments[idx].Attractions = append(segments[idx].Attractions, attraction)
			attached++
			continue
		}
		if p.snapRadius <= 0 {
			continue
		}
		if idx, ok := p.nearestSegment(&tr, segments, att.coord); ok {
			segments[idx].Attractions = append(segments[idx].Attractions, attraction)
			snapped++
		}
	}
	p.logger.Info("attractions assigned",
		zap.Int("on_street", attached),
		zap.Int("snapped", snapped),
		zap.Int("dropped", len(p.attractions)-attached-snapped))

	return segments
}

func (p *OsmParser) nearestSegment(tr *rtree.RTreeG[int], segments []datastructure.StreetSegment,
	c nodeCoord) (int, bool) {
	// bounding box of the snap radius
	upLat, _ := geo.GetDestinationPoint(c.lat, c.lon, 0, geo.MilesToKm(p.snapRadius))
	_, rightLon := geo.GetDestinationPoint(c.lat, c.lon, 90, geo.MilesToKm(p.snapRadius))
	dLat := upLat - c.lat
	dLon := math.Abs(rightLon - c.lon)

	best, bestDist := -1, math.MaxFloat64
	snap := geo.NewCoordinate(c.lat, c.lon)
	tr.Search([2]float64{c.lon - dLon, c.lat - dLat}, [2]float64{c.lon + dLon, c.lat + dLat},
		func(min, max [2]float64, idx int) bool {
			start, end := segments[idx].GetStart(), segments[idx].GetEnd()
			d := geo.PointLineDistanceMiles(
				geo.NewCoordinate(start.Lat, start.Lon),
				geo.NewCoordinate(end.Lat, end.Lon),
				snap,
			)
			if d < bestDist {
				best, bestDist = idx, d
			}
			return true
		})

	if best < 0 || bestDist > p.snapRadius {
		return -1, false
	}
	return best, true
}

func acceptOsmWay(way *osm.Way) bool {
	if way.Tags.Find("name") == "" {
		return false
	}
	highway := way.Tags.Find("highway")
	if highway == "" {
		return false
	}
	_, ok := acceptedHighway[highway]
	return ok
}

func attractionName(tags osm.Tags) (string, bool) {
	name := tags.Find("name")
	if name == "" {
		return "", false
	}
	for _, key := range attractionKeys {
		if tags.Find(key) != "" {
			return name, true
		}
	}
	return "", false
}
