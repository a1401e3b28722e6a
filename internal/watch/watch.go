// Package watch keeps one flight listing loaded in the background. The
// listing follows the watch.filters.* config keys: editing the config file
// reloads it with the new filter.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/domain/vo"
	"github.com/joshuarp/flight-admin/internal/fetch"
	"github.com/joshuarp/flight-admin/internal/session"
	"github.com/joshuarp/flight-admin/internal/shared/config"
)

// SessionID names the single session the watcher signs in with.
const SessionID = "watch"

type AuthAPI interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.UpstreamAuth, error)
}

type FlightsAPI interface {
	ListFlights(ctx context.Context, token *session.Token, filter domain.FlightFilter) (domain.FlightPage, error)
}

type Deps struct {
	Auth      AuthAPI
	Flights   FlightsAPI
	Exchanger session.Exchanger
	Config    config.ConfigProvider

	FetchOptions []fetch.Option
	Logger       *slog.Logger

	// Observer, when set, sees every state transition after it is logged.
	Observer func(fetch.State[domain.FlightPage])
}

type Watcher struct {
	auth         AuthAPI
	flights      FlightsAPI
	exchanger    session.Exchanger
	config       config.ConfigProvider
	fetchOptions []fetch.Option
	logger       *slog.Logger
	observer     func(fetch.State[domain.FlightPage])
}

func New(deps Deps) (*Watcher, error) {
	switch {
	case deps.Auth == nil:
		return nil, errors.New("watch: auth api is required")
	case deps.Flights == nil:
		return nil, errors.New("watch: flights api is required")
	case deps.Exchanger == nil:
		return nil, errors.New("watch: token exchanger is required")
	case deps.Config == nil:
		return nil, errors.New("watch: config is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		auth:         deps.Auth,
		flights:      deps.Flights,
		exchanger:    deps.Exchanger,
		config:       deps.Config,
		fetchOptions: deps.FetchOptions,
		logger:       logger,
		observer:     deps.Observer,
	}, nil
}

// FilterFromConfig reads the watched filter. Unset paging keys take the
// listing defaults.
func FilterFromConfig(cfg config.ConfigProvider) domain.FlightFilter {
	return domain.FlightFilter{
		Page: cfg.GetInt("watch.filters.page"),
		Size: cfg.GetInt("watch.filters.size"),
		Code: cfg.GetString("watch.filters.code"),
	}.WithDefaults()
}

// Run signs in and keeps the listing loaded until ctx is done. It returns an
// error wrapping vo.ErrSessionExpired once the upstream session can no longer
// be refreshed.
func (w *Watcher) Run(ctx context.Context) error {
	credentials := domain.Credentials{
		Email:    strings.TrimSpace(w.config.GetString("watch.email")),
		Password: w.config.GetString("watch.password"),
	}
	if credentials.Email == "" || credentials.Password == "" {
		return errors.New("watch: watch.email and watch.password are required")
	}

	auth, err := w.auth.Login(ctx, credentials)
	if err != nil {
		return fmt.Errorf("watch: login failed: %w", err)
	}

	store := session.NewMemoryStore()
	if err := store.SetToken(ctx, SessionID, auth.Token); err != nil {
		return fmt.Errorf("watch: failed to store token: %w", err)
	}

	runCtx, stop := context.WithCancelCause(ctx)
	defer stop(nil)

	refresher, err := session.NewRefresher(session.RefresherConfig{
		Store:     store,
		Exchanger: w.exchanger,
		OnExpired: func(_ context.Context, sessionID string, cause error) {
			w.logger.Error("watch session expired", "session_id", sessionID, "error", cause)
			stop(fmt.Errorf("%w: %w", vo.ErrSessionExpired, cause))
		},
		Logger: w.logger,
	})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	controller, err := fetch.New(fetch.Operation[domain.FlightFilter, domain.FlightPage]{
		Name:   "watch_flights",
		Invoke: w.flights.ListFlights,
	}, refresher.For(SessionID), w.fetchOptions...)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer controller.Subscribe(w.observe)()

	feed := newFilterFeed(FilterFromConfig(w.config))
	w.config.OnChange(func() {
		feed.push(FilterFromConfig(w.config))
	})
	w.logger.Info("watching flights", "email", credentials.Email, "filter", feed.current())

	var wg sync.WaitGroup
	if interval := w.config.GetDuration("watch.interval"); interval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.poll(runCtx, controller, feed, interval)
		}()
	}

	err = controller.Follow(runCtx, feed.updates(), func(prev, next domain.FlightFilter) bool { return prev == next })
	cause := context.Cause(runCtx)
	stop(nil)
	wg.Wait()

	if cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// poll reloads the current filter without announcing loading.
func (w *Watcher) poll(ctx context.Context, controller *fetch.Controller[domain.FlightFilter, domain.FlightPage], feed *filterFeed, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Failures are logged by the controller and land in its state.
			_, _ = controller.Execute(ctx, feed.current(), fetch.Quiet())
		}
	}
}

func (w *Watcher) observe(state fetch.State[domain.FlightPage]) {
	switch state.Status {
	case fetch.StatusLoading:
		w.logger.Info("loading flights", "attempt", state.Attempts)
	case fetch.StatusSucceeded:
		w.logger.Info("flights loaded", "count", state.Data.Count, "shown", len(state.Data.Resources), "attempts", state.Attempts)
	case fetch.StatusFailed:
		w.logger.Warn("flights failed to load", "error", state.Error, "attempts", state.Attempts)
	}

	if w.observer != nil {
		w.observer(state)
	}
}
