package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/flight-admin/internal/shared/config"
)

// HTTPServerModule serves the gateway routes registered by the other modules.
func HTTPServerModule() fx.Option {
	return fx.Module("http",
		fx.Invoke(registerServerLifecycle),
	)
}

func registerServerLifecycle(
	lifecycle fx.Lifecycle,
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
) {
	port := cfg.GetInt("server.port")
	if port == 0 {
		port = 3000
	}
	address := fmt.Sprintf(":%d", port)
	var serveErrCh chan error

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener, err := net.Listen("tcp", address)
			if err != nil {
				return fmt.Errorf("app: failed to bind server address %s: %w", address, err)
			}

			serveErrCh = make(chan error, 1)
			go func() {
				err := app.Listener(listener)
				if err != nil && !errors.Is(err, net.ErrClosed) {
					logger.Error("fiber server stopped unexpectedly", "error", err)
				}
				serveErrCh <- err
			}()

			logger.Info("fiber server started", "address", address)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			var shutdownErrors []error

			if err := app.ShutdownWithContext(ctx); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}

			if serveErrCh != nil {
				select {
				case err := <-serveErrCh:
					if err != nil && !errors.Is(err, net.ErrClosed) {
						shutdownErrors = append(shutdownErrors, err)
					}
				case <-ctx.Done():
					shutdownErrors = append(shutdownErrors, ctx.Err())
				}
			}

			if len(shutdownErrors) > 0 {
				return errors.Join(shutdownErrors...)
			}

			logger.Info("fiber server shutdown completed")
			return nil
		},
	})
}

type lifecycleResourcesIn struct {
	fx.In

	Config   config.ConfigProvider
	Logger   *slog.Logger
	Postgres *postgresPool `optional:"true"`
	Redis    *redis.Client `optional:"true"`
}

// registerLifecycle releases the shared clients once every module has stopped.
func registerLifecycle(lifecycle fx.Lifecycle, in lifecycleResourcesIn) {
	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			in.Config.StopWatching()

			var closeErrors []error
			if err := in.Postgres.Close(); err != nil {
				closeErrors = append(closeErrors, err)
			}
			if in.Redis != nil {
				if err := in.Redis.Close(); err != nil {
					closeErrors = append(closeErrors, err)
				}
			}

			if len(closeErrors) > 0 {
				return errors.Join(closeErrors...)
			}
			in.Logger.Info("resources released")
			return nil
		},
	})
}
