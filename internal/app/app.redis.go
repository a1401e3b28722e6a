package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/flight-admin/internal/shared/config"
	sharedidempotency "github.com/joshuarp/flight-admin/internal/shared/idempotency"
	sharedratelimit "github.com/joshuarp/flight-admin/internal/shared/ratelimit"
)

const redisKeyPrefix = "flight-admin"

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

// provideFlightsRateLimiter returns nil when flight writes are not throttled.
func provideFlightsRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	if !cfg.GetBool("flights.rate_limit.enabled") {
		return nil, nil
	}
	if redisClient == nil {
		return nil, fmt.Errorf("app: redis client is required for flights rate limiter")
	}

	limit := cfg.GetInt("rate_limit.flights.limit")
	if limit <= 0 {
		limit = 30
	}

	window := cfg.GetDuration("rate_limit.flights.window")
	if window <= 0 {
		window = time.Minute
	}

	burst := cfg.GetInt("rate_limit.flights.burst")
	if burst <= 0 {
		burst = limit
	}

	store := sharedratelimit.NewRedisStore(redisClient, sharedratelimit.WithRedisPrefix(redisKeyPrefix+":ratelimit"))

	return sharedratelimit.New(store, sharedratelimit.Config{
		Algorithm: sharedratelimit.ParseAlgorithm(cfg.GetString("rate_limit.flights.algorithm")),
		Limit:     int64(limit),
		Window:    window,
		Burst:     int64(burst),
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			if logger != nil {
				logger.Warn("rate limit exceeded", "scope", "flights", "key", key, "limit", result.Limit)
			}
		},
	})
}

// provideFlightsIdempotencyStore returns nil when flight writes are not
// deduplicated.
func provideFlightsIdempotencyStore(cfg config.ConfigProvider, redisClient *redis.Client, pool *postgresPool) (sharedidempotency.Store, error) {
	if !cfg.GetBool("flights.idempotency.enabled") {
		return nil, nil
	}

	switch backend := strings.TrimSpace(strings.ToLower(cfg.GetString("flights.idempotency.store"))); backend {
	case "", "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("app: redis client is required for the idempotency store")
		}
		return sharedidempotency.NewRedisStore(redisClient,
			sharedidempotency.WithRedisPrefix(redisKeyPrefix+":idempotency"),
			sharedidempotency.WithRetention(cfg.GetDuration("flights.idempotency.ttl")),
		), nil
	case "postgres":
		db, err := pool.DB()
		if err != nil {
			return nil, err
		}
		return sharedidempotency.NewSQLXStore(db), nil
	default:
		return nil, fmt.Errorf("app: unknown idempotency store %q", backend)
	}
}
