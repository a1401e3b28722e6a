package app

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/flight-admin/internal/services"
	"github.com/joshuarp/flight-admin/internal/shared/config"
	sharedlog "github.com/joshuarp/flight-admin/internal/shared/log"
	"github.com/joshuarp/flight-admin/internal/upstream"
	"github.com/joshuarp/flight-admin/internal/watch"
)

func WatchModule() fx.Option {
	return fx.Module("watch",
		fx.Provide(provideWatcher),
		fx.Invoke(registerWatchLifecycle),
	)
}

func provideWatcher(
	cfg config.ConfigProvider,
	client *upstream.Client,
	fetchOptions services.FetchOptions,
	logger *slog.Logger,
) (*watch.Watcher, error) {
	return watch.New(watch.Deps{
		Auth:         client,
		Flights:      client,
		Exchanger:    client,
		Config:       cfg,
		FetchOptions: fetchOptions,
		Logger:       sharedlog.Component(logger, "watch"),
	})
}

type watchLifecycleIn struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Watcher    *watch.Watcher
	Config     config.ConfigProvider
	Logger     *slog.Logger
	Bin        string `name:"bin"`
}

// registerWatchLifecycle runs the watcher for as long as the app and shuts
// the app down when the watcher gives up. In the combined binary the watcher
// only starts when watch.email is set.
func registerWatchLifecycle(in watchLifecycleIn) {
	lifecycle, shutdowner, watcher, cfg, logger := in.Lifecycle, in.Shutdowner, in.Watcher, in.Config, in.Logger
	if isSingleBinaryBin(in.Bin) && strings.TrimSpace(cfg.GetString("watch.email")) == "" {
		logger.Info("watch disabled, watch.email is not set")
		return
	}

	var (
		cancel context.CancelFunc
		done   chan struct{}
	)

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			cfg.WatchChanges()

			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			done = make(chan struct{})
			go func() {
				defer close(done)
				if err := watcher.Run(ctx); err != nil {
					logger.Error("watcher stopped", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel == nil {
				return nil
			}
			cancel()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
