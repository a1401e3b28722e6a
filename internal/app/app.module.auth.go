package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/joshuarp/flight-admin/internal/handlers"
	"github.com/joshuarp/flight-admin/internal/services"
	"github.com/joshuarp/flight-admin/internal/session"
	"github.com/joshuarp/flight-admin/internal/shared/config"
	sharedjwt "github.com/joshuarp/flight-admin/internal/shared/jwt"
	sharedlog "github.com/joshuarp/flight-admin/internal/shared/log"
	"github.com/joshuarp/flight-admin/internal/shared/uid"
	"github.com/joshuarp/flight-admin/internal/upstream"
)

func AuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(
			fx.Annotate(
				provideAuthSessionService,
				fx.As(new(handlers.AuthSessionService)),
			),
			handlers.NewAuthSessionHandler,
		),
		fx.Invoke(registerAuthRoutes),
	)
}

type authSessionServiceIn struct {
	fx.In

	Config       config.ConfigProvider
	Client       *upstream.Client
	Store        session.Store
	IDs          uid.UIDGenerator
	TokenManager sharedjwt.TokenManager
	Listings     *services.FlightListings
	FetchOptions services.FetchOptions
	Logger       *slog.Logger
}

func provideAuthSessionService(in authSessionServiceIn) *services.AuthSessionService {
	return services.NewAuthSessionService(services.AuthSessionDeps{
		API:          in.Client,
		Store:        in.Store,
		IDs:          in.IDs,
		TokenManager: in.TokenManager,
		Forgetters:   []services.SessionForgetter{in.Listings},
		SessionTTL:   in.Config.GetDuration("security.jwt.ttl"),
		FetchOptions: in.FetchOptions,
		Logger:       sharedlog.Component(in.Logger, "auth"),
	})
}
