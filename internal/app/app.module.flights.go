package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/joshuarp/flight-admin/internal/handlers"
	"github.com/joshuarp/flight-admin/internal/services"
	"github.com/joshuarp/flight-admin/internal/session"
	sharedlog "github.com/joshuarp/flight-admin/internal/shared/log"
	"github.com/joshuarp/flight-admin/internal/upstream"
)

func FlightsModule() fx.Option {
	return fx.Module("flights",
		fx.Provide(
			fx.Annotate(
				provideFlightsRateLimiter,
				fx.ResultTags(`name:"flights_rate_limiter"`),
			),
			fx.Annotate(
				provideFlightsIdempotencyStore,
				fx.ResultTags(`name:"flights_idempotency_store"`),
			),
			fx.Annotate(
				provideFlightService,
				fx.As(new(handlers.FlightService)),
			),
			handlers.NewFlightReadHandler,
			handlers.NewFlightWriteHandler,
		),
		fx.Invoke(registerFlightRoutes),
	)
}

type flightServiceIn struct {
	fx.In

	Client       *upstream.Client
	Store        session.Store
	Refresher    *session.Refresher
	Listings     *services.FlightListings
	FetchOptions services.FetchOptions
	Logger       *slog.Logger
}

func provideFlightService(in flightServiceIn) *services.FlightService {
	return services.NewFlightService(services.FlightServiceDeps{
		API:          in.Client,
		Store:        in.Store,
		Credentials:  in.Refresher,
		Listings:     in.Listings,
		FetchOptions: in.FetchOptions,
		Logger:       sharedlog.Component(in.Logger, "flights"),
	})
}
