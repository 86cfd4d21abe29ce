package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lintang-b-s/poinav/pkg/engine"
	"github.com/lintang-b-s/poinav/pkg/engine/routing"
	api "github.com/lintang-b-s/poinav/pkg/http"
	"github.com/lintang-b-s/poinav/pkg/http/usecases"
	"github.com/lintang-b-s/poinav/pkg/logger"
	"github.com/lintang-b-s/poinav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // ignore

	if err := util.ReadConfig(); err != nil {
		logger.Fatal("failed to read config", zap.Error(err))
	}

	navEngine, err := engine.NewEngine(viper.GetString("MAP_FILE"), logger,
		routing.WithMaxSettledNodes(viper.GetInt("MAX_SETTLED_NODES")))
	if err != nil {
		logger.Fatal("failed to load map data", zap.Error(err))
	}

	routingService, err := usecases.NewRoutingService(logger, navEngine.GetNavigator(), navEngine.GetSpatialIndex(),
		viper.GetInt("ROUTE_CACHE_SIZE"), viper.GetInt("NEARBY_MAX_RESULTS"))
	if err != nil {
		logger.Fatal("failed to create routing service", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = api.NewServer(logger).Use(ctx, routingService)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped with error", zap.Error(err))
		return
	}

	logger.Info("Attraction Navigator Server Stopped")
}
