package engine

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/poinav/pkg/engine/routing"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
	"github.com/lintang-b-s/poinav/pkg/spatialindex"
	"github.com/lintang-b-s/poinav/pkg/storage"
	"go.uber.org/zap"
)

type Engine struct {
	navigator *routing.Navigator
	rtree     *spatialindex.Rtree
}

func (e *Engine) GetNavigator() *routing.Navigator {
	return e.navigator
}

func (e *Engine) GetSpatialIndex() *spatialindex.Rtree {
	return e.rtree
}

// NewEngine loads mapFile and builds the navigator and the attraction spatial index.
// .db / .sqlite files are read from the sqlite map store, anything else as map text (.bz2 compressed or plain).
func NewEngine(mapFile string, logger *zap.Logger, opts ...routing.NavigatorOption) (*Engine, error) {
	logger.Info("Starting attraction navigator...")

	logger.Info("Reading map data from ", zap.String("mapFile", mapFile))
	loader, err := openLoader(mapFile)
	if err != nil {
		return nil, err
	}

	return NewEngineFromLoader(loader, logger, opts...), nil
}

func NewEngineFromLoader(loader mapparser.Loader, logger *zap.Logger, opts ...routing.NavigatorOption) *Engine {
	navigator := routing.NewNavigator(logger, opts...)
	navigator.LoadMapData(loader)

	rt := spatialindex.NewRtree()
	rt.Build(navigator.GetAttractionMapper(), logger)

	return &Engine{
		navigator: navigator,
		rtree:     rt,
	}
}

func openLoader(mapFile string) (mapparser.Loader, error) {
	switch strings.ToLower(filepath.Ext(mapFile)) {
	case ".db", ".sqlite":
		store, err := storage.Open(mapFile)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadSegments(context.Background())
	default:
		ml := mapparser.NewMapLoader()
		if err := ml.Load(mapFile); err != nil {
			return nil, err
		}
		return ml, nil
	}
}
