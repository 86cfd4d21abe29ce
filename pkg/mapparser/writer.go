package mapparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/poinav/pkg/datastructure"
)

// MapWriter writes segments in the grammar MapLoader reads.
type MapWriter struct {
	compress bool
}

func NewMapWriter(compress bool) *MapWriter {
	return &MapWriter{compress: compress}
}

func (mw *MapWriter) WriteFile(filename string, segments []datastructure.StreetSegment) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !mw.compress {
		return mw.Write(f, segments)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := mw.Write(bz, segments); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func (mw *MapWriter) Write(out io.Writer, segments []datastructure.StreetSegment) error {
	w := bufio.NewWriter(out)

	for _, seg := range segments {
		start, end := seg.GetStart(), seg.GetEnd()
		fmt.Fprintf(w, "%s\n", seg.StreetName)
		fmt.Fprintf(w, "%s, %s %s, %s\n", start.LatText, start.LonText, end.LatText, end.LonText)
		fmt.Fprintf(w, "%d\n", len(seg.Attractions))
		for _, att := range seg.Attractions {
			// '|' ends the name when read back
			name := strings.ReplaceAll(att.Name, "|", "/")
			fmt.Fprintf(w, "%s|%s, %s\n", name, att.Coord.LatText, att.Coord.LonText)
		}
	}

	return w.Flush()
}
