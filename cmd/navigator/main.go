package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lintang-b-s/poinav/pkg"
	"github.com/lintang-b-s/poinav/pkg/engine"
	"github.com/lintang-b-s/poinav/pkg/engine/routing"
	"github.com/lintang-b-s/poinav/pkg/logger"
	"go.uber.org/zap"
)

var (
	mapFile         = flag.String("map", "./data/mapdata.txt", "map data file (.txt, .bz2 or .db)")
	start           = flag.String("start", "", "name of the starting attraction")
	dest            = flag.String("dest", "", "name of the destination attraction")
	maxSettledNodes = flag.Int("max_settled", 0, "stop the search after this many settled locations, 0 is unbounded")
)

func main() {
	flag.Parse()
	if *start == "" || *dest == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	navEngine, err := engine.NewEngine(*mapFile, logger, routing.WithMaxSettledNodes(*maxSettledNodes))
	if err != nil {
		logger.Fatal("failed to load map data", zap.Error(err))
	}

	directions, res, err := navEngine.GetNavigator().Navigate(*start, *dest)
	if err != nil {
		logger.Fatal("navigation failed", zap.Error(err))
	}

	switch res {
	case pkg.NAV_SUCCESS:
	case pkg.NAV_BAD_SOURCE:
		fmt.Printf("Unknown starting attraction: %s\n", *start)
		os.Exit(1)
	case pkg.NAV_BAD_DESTINATION:
		fmt.Printf("Unknown destination attraction: %s\n", *dest)
		os.Exit(1)
	default:
		fmt.Printf("No route from %s to %s\n", *start, *dest)
		os.Exit(1)
	}

	fmt.Printf("Directions from %s to %s:\n", *start, *dest)
	for _, d := range directions {
		fmt.Println(d.String())
	}
	fmt.Printf("Total distance: %.2f miles\n", routing.TotalDistance(directions))
}
