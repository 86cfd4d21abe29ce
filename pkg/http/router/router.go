package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/poinav/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/poinav/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/poinav/pkg/http/server"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "github.com/lintang-b-s/poinav/pkg/http/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// Handler builds the router wrapped in the middleware chain.
func (api *API) Handler(rateLimit RateLimitConfig, routingService controllers.RoutingService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)

	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	group := router_helper.NewRouteGroup(router, "/api")

	navigatorRoutes := controllers.New(routingService, api.log)

	navigatorRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Labels}
	if rateLimit.Enabled {
		mwChain = append(mwChain, Limit(rateLimit.RPS, rateLimit.Burst))
	}
	return alice.New(mwChain...).Then(router)
}

//	@title			Attraction Navigator API
//	@version		1.0
//	@description	Turn-by-turn driving directions between named attractions.

//	@contact.name	Lintang Birda Saputra

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost:6060
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	rateLimit RateLimitConfig,
	routingService controllers.RoutingService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(rateLimit, routingService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		if err := http_server.GracefulShutdown(srv, config.Timeout); err != nil {
			api.log.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
		return nil
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
