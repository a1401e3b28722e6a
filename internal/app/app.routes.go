package app

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/joshuarp/flight-admin/internal/handlers"
	"github.com/joshuarp/flight-admin/internal/middlewares"
	"github.com/joshuarp/flight-admin/internal/shared/config"
	sharedidempotency "github.com/joshuarp/flight-admin/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/flight-admin/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/flight-admin/internal/shared/ratelimit"
)

type routerGroupsOut struct {
	fx.Out
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

type routerGroupsIn struct {
	fx.In

	App          *fiber.App
	Config       config.ConfigProvider
	Logger       *slog.Logger
	TokenManager sharedjwt.TokenManager
	Registry     *prometheus.Registry
}

func provideRouterGroups(in routerGroupsIn) (routerGroupsOut, error) {
	httpMetrics, err := middlewares.NewHTTPMetrics(in.Registry)
	if err != nil {
		return routerGroupsOut{}, err
	}

	app := in.App
	app.Use(middlewares.NewHTTPRecoveryMiddleware(in.Logger))
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware(splitOrigins(in.Config.GetString("server.cors_origins"))))
	app.Use(middlewares.NewHTTPMetricsMiddleware(httpMetrics))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(in.Logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(in.Registry, promhttp.HandlerOpts{})))

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPSessionMiddleware(in.TokenManager))

	return routerGroupsOut{
		Public:    api,
		Protected: protected,
	}, nil
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

type authRoutesIn struct {
	fx.In
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
	Handler   *handlers.AuthSessionHandler
}

func registerAuthRoutes(in authRoutesIn) {
	in.Handler.Register(in.Public)
	in.Handler.RegisterProtected(in.Protected)
}

type flightRoutesIn struct {
	fx.In
	Protected        fiber.Router            `name:"api_protected"`
	IdempotencyStore sharedidempotency.Store `name:"flights_idempotency_store"`
	RateLimiter      sharedratelimit.Limiter `name:"flights_rate_limiter"`
	Config           config.ConfigProvider
	Logger           *slog.Logger
	ReadHandler      *handlers.FlightReadHandler
	WriteHandler     *handlers.FlightWriteHandler
}

func registerFlightRoutes(in flightRoutesIn) {
	in.ReadHandler.Register(in.Protected)

	writeMiddlewares := []any{
		middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
			Limiter:      in.RateLimiter,
			Logger:       in.Logger,
			Skipper:      middlewares.SkipSafeMethods,
			KeyExtractor: middlewares.PerSessionKeyExtractor("flights"),
		}),
	}
	if in.IdempotencyStore != nil {
		writeMiddlewares = append(writeMiddlewares, middlewares.NewHTTPIdempotencyMiddleware(middlewares.IdempotencyConfig{
			Store:    in.IdempotencyStore,
			Scope:    "flights",
			Required: in.Config.GetBool("flights.idempotency.required"),
			Logger:   in.Logger,
		}))
	}

	in.WriteHandler.Register(in.Protected, writeMiddlewares...)
}
