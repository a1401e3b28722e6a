package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/fetch"
	"github.com/joshuarp/flight-admin/internal/handlers"
	"github.com/joshuarp/flight-admin/internal/services"
	"github.com/joshuarp/flight-admin/internal/session"
	"github.com/joshuarp/flight-admin/internal/shared/config"
	sharedlog "github.com/joshuarp/flight-admin/internal/shared/log"
	"github.com/joshuarp/flight-admin/internal/shared/uid"
	"github.com/joshuarp/flight-admin/internal/upstream"
)

func provideMessageExtractor(cfg config.ConfigProvider) (*fetch.MessageExtractor, error) {
	messages, err := fetch.NewMessageExtractor(cfg.GetString("upstream.error_message_query"))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return messages, nil
}

func provideFetchMetrics(registry *prometheus.Registry) (*fetch.Metrics, error) {
	return fetch.NewMetrics(registry)
}

func provideFetchOptions(
	logger *slog.Logger,
	ids uid.UIDGenerator,
	metrics *fetch.Metrics,
	messages *fetch.MessageExtractor,
) services.FetchOptions {
	return services.FetchOptions{
		fetch.WithLogger(sharedlog.Component(logger, "fetch")),
		fetch.WithIDGenerator(ids),
		fetch.WithMetrics(metrics),
		fetch.WithMessageExtractor(messages),
	}
}

func provideUpstreamClient(cfg config.ConfigProvider) (*upstream.Client, error) {
	return upstream.New(upstream.Options{
		BaseURL: cfg.GetString("upstream.base_url"),
		Timeout: cfg.GetDuration("upstream.timeout"),
	})
}

func provideSessionStore(cfg config.ConfigProvider, redisClient *redis.Client, pool *postgresPool) (session.Store, error) {
	switch backend := strings.TrimSpace(strings.ToLower(cfg.GetString("session.store"))); backend {
	case "", "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		return session.NewRedisStore(redisClient,
			session.WithRedisPrefix(redisKeyPrefix+":session"),
			session.WithRedisTTL(cfg.GetDuration("session.ttl")),
		), nil
	case "postgres":
		db, err := pool.DB()
		if err != nil {
			return nil, err
		}
		return session.NewSQLXStore(db), nil
	default:
		return nil, fmt.Errorf("app: unknown session store %q", backend)
	}
}

func provideFlightListings(cfg config.ConfigProvider) *services.FlightListings {
	return services.NewSessionControllers[domain.FlightFilter, domain.FlightPage](cfg.GetDuration("session.list_idle_ttl"))
}

func provideRefresher(
	store session.Store,
	client *upstream.Client,
	listings *services.FlightListings,
	registry *prometheus.Registry,
	logger *slog.Logger,
) (*session.Refresher, error) {
	metrics, err := session.NewRefreshMetrics(registry)
	if err != nil {
		return nil, err
	}

	refreshLogger := sharedlog.Component(logger, "session")
	return session.NewRefresher(session.RefresherConfig{
		Store:     store,
		Exchanger: client,
		OnExpired: func(_ context.Context, sessionID string, cause error) {
			listings.Forget(sessionID)
			refreshLogger.Info("session expired", "session_id", sessionID, "error", cause)
		},
		Logger:  refreshLogger,
		Metrics: metrics,
	})
}

func provideErrorResponder(messages *fetch.MessageExtractor, logger *slog.Logger) *handlers.ErrorResponder {
	return handlers.NewErrorResponder(messages, sharedlog.Component(logger, "http"))
}
