package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/poinav/pkg/logger"
	"github.com/lintang-b-s/poinav/pkg/mapparser"
	"github.com/lintang-b-s/poinav/pkg/storage"
	"go.uber.org/zap"
)

var (
	mapFile = flag.String("map", "./data/mapdata.txt", "map data file (.txt or .bz2)")
	dbFile  = flag.String("db", "./data/mapdata.db", "sqlite map store")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	ml := mapparser.NewMapLoader()
	if err := ml.Load(*mapFile); err != nil {
		logger.Fatal("failed to read map data", zap.Error(err))
	}

	store, err := storage.Open(*dbFile)
	if err != nil {
		logger.Fatal("failed to open map store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.InitSchema(ctx); err != nil {
		logger.Fatal("failed to create schema", zap.Error(err))
	}
	if err := store.SaveSegments(ctx, ml.Segments()); err != nil {
		logger.Fatal("failed to save street segments", zap.Error(err))
	}

	n, err := store.CountSegments(ctx)
	if err != nil {
		logger.Fatal("failed to count street segments", zap.Error(err))
	}
	logger.Info("map imported", zap.String("db", *dbFile), zap.Int("streetSegments", n))
}
