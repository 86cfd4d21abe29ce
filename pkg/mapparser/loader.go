package mapparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/poinav/pkg/datastructure"
	"github.com/lintang-b-s/poinav/pkg/util"
)

// Loader is a read-only, indexable list of street segments.
type Loader interface {
	GetNumSegments() int
	GetSegment(i int) (datastructure.StreetSegment, bool)
}

var (
	ErrMalformedCoord      = errors.New("malformed coordinate")
	ErrMalformedCount      = errors.New("malformed attraction count")
	ErrMalformedAttraction = errors.New("malformed attraction")
	ErrTruncatedRecord     = errors.New("truncated segment record")
)

/*
MapLoader. parse a map data file. each segment record is:

	street name
	startLat, startLon endLat, endLon
	attraction count
	name|lat, lon        (repeated count times)

coordinate text is kept verbatim, two coordinates are the same location only if their text matches.
*/
type MapLoader struct {
	segments []datastructure.StreetSegment
}

func NewMapLoader() *MapLoader {
	return &MapLoader{
		segments: make([]datastructure.StreetSegment, 0),
	}
}

// Load reads mapFile, bzip2 compressed when it ends in .bz2.
func (l *MapLoader) Load(mapFile string) error {
	f, err := os.Open(mapFile)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(mapFile, ".bz2") {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return err
		}
		defer bz.Close()
		r = bz
	}

	return l.LoadReader(r)
}

func (l *MapLoader) LoadReader(r io.Reader) error {
	br := bufio.NewReader(r)
	lineNum := 0

	next := func() (string, error) {
		line, err := util.ReadLine(br)
		if err != nil {
			return "", err
		}
		lineNum++
		return line, nil
	}

	segments := make([]datastructure.StreetSegment, 0)
	for {
		streetName, err := next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(streetName) == "" {
			continue
		}

		line, err := next()
		if err != nil {
			return truncated(err, lineNum+1, streetName)
		}
		start, end, err := parseSegmentLine(line)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "line %d", lineNum)
		}

		line, err = next()
		if err != nil {
			return truncated(err, lineNum+1, streetName)
		}
		count, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || count < 0 {
			return util.WrapErrorf(ErrMalformedCount, util.ErrBadParamInput, "line %d: %q", lineNum, line)
		}

		attractions := make([]datastructure.Attraction, 0, count)
		for i := 0; i < count; i++ {
			line, err = next()
			if err != nil {
				return truncated(err, lineNum+1, streetName)
			}
			att, err := parseAttractionLine(line)
			if err != nil {
				return util.WrapErrorf(err, util.ErrBadParamInput, "line %d", lineNum)
			}
			attractions = append(attractions, att)
		}

		segments = append(segments, datastructure.NewStreetSegment(streetName, start, end, attractions...))
	}

	l.segments = append(l.segments, segments...)
	return nil
}

func truncated(err error, lineNum int, streetName string) error {
	if errors.Is(err, io.EOF) {
		return util.WrapErrorf(ErrTruncatedRecord, util.ErrBadParamInput, "line %d: street %q", lineNum, streetName)
	}
	return err
}

// parseSegmentLine. "lat, lon lat, lon"
func parseSegmentLine(line string) (datastructure.GeoCoord, datastructure.GeoCoord, error) {
	tokens := util.Fields(strings.ReplaceAll(line, ",", " "))
	if len(tokens) != 4 {
		return datastructure.GeoCoord{}, datastructure.GeoCoord{}, fmt.Errorf("%w: %q", ErrMalformedCoord, line)
	}
	start, err := datastructure.NewGeoCoord(tokens[0], tokens[1])
	if err != nil {
		return datastructure.GeoCoord{}, datastructure.GeoCoord{}, err
	}
	end, err := datastructure.NewGeoCoord(tokens[2], tokens[3])
	if err != nil {
		return datastructure.GeoCoord{}, datastructure.GeoCoord{}, err
	}
	return start, end, nil
}

// parseAttractionLine. "name|lat, lon", the name ends at the first '|'.
func parseAttractionLine(line string) (datastructure.Attraction, error) {
	name, coord, ok := strings.Cut(line, "|")
	if !ok || name == "" {
		return datastructure.Attraction{}, fmt.Errorf("%w: %q", ErrMalformedAttraction, line)
	}
	tokens := util.Fields(strings.ReplaceAll(coord, ",", " "))
	if len(tokens) != 2 {
		return datastructure.Attraction{}, fmt.Errorf("%w: %q", ErrMalformedCoord, line)
	}
	gc, err := datastructure.NewGeoCoord(tokens[0], tokens[1])
	if err != nil {
		return datastructure.Attraction{}, err
	}
	return datastructure.NewAttraction(name, gc), nil
}

func (l *MapLoader) GetNumSegments() int {
	return len(l.segments)
}

func (l *MapLoader) GetSegment(i int) (datastructure.StreetSegment, bool) {
	if i < 0 || i >= len(l.segments) {
		return datastructure.StreetSegment{}, false
	}
	return l.segments[i], true
}

// Segments returns every loaded segment. callers must not mutate the result.
func (l *MapLoader) Segments() []datastructure.StreetSegment {
	return l.segments
}

// SliceLoader adapts an in-memory slice to Loader.
type SliceLoader []datastructure.StreetSegment

func (s SliceLoader) GetNumSegments() int {
	return len(s)
}

func (s SliceLoader) GetSegment(i int) (datastructure.StreetSegment, bool) {
	if i < 0 || i >= len(s) {
		return datastructure.StreetSegment{}, false
	}
	return s[i], true
}
