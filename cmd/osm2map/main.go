package main

import (
	"context"
	"flag"
	"strings"

	"github.com/lintang-b-s/poinav/pkg/logger"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
	"github.com/lintang-b-s/poinav/pkg/osmparser"
	"go.uber.org/zap"
)

var (
	osmFile    = flag.String("osm", "./data/map.osm.pbf", "openstreetmap .osm.pbf extract")
	outFile    = flag.String("out", "./data/mapdata.txt", "map data output, a .bz2 suffix writes it compressed")
	snapRadius = flag.Float64("snap_radius", 0.05, "max distance in miles between an attraction node and its street")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	osmParser := osmparser.NewOSMParser(logger)
	osmParser.SetSnapRadius(*snapRadius)
	segments, err := osmParser.Parse(context.Background(), *osmFile)
	if err != nil {
		logger.Fatal("failed to parse osm file", zap.Error(err))
	}

	writer := mapparser.NewMapWriter(strings.HasSuffix(*outFile, ".bz2"))
	if err := writer.WriteFile(*outFile, segments); err != nil {
		logger.Fatal("failed to write map data", zap.Error(err))
	}

	logger.Sugar().Infof("wrote %d street segments to %s", len(segments), *outFile)
}
