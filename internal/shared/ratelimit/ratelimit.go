// Package ratelimit throttles flight writes per gateway session. Counters
// live in Redis so every gateway instance shares them.
package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Algorithm defines the rate limiting algorithm to use.
type Algorithm string

const (
	// AlgorithmTokenBucket refills steadily and allows bursts up to Burst.
	AlgorithmTokenBucket Algorithm = "token_bucket"

	// AlgorithmSlidingWindow counts requests in the trailing window.
	AlgorithmSlidingWindow Algorithm = "sliding_window"

	// AlgorithmFixedWindow counts per window; bursts are possible at boundaries.
	AlgorithmFixedWindow Algorithm = "fixed_window"
)

// Result contains the rate limit decision and metadata.
type Result struct {
	// Allowed indicates if the request is permitted.
	Allowed bool

	// Limit is the maximum requests per window.
	Limit int64

	// Remaining is the number of requests left in current window.
	Remaining int64

	// ResetAt is when the rate limit window resets.
	ResetAt time.Time

	// RetryAfter is the duration to wait before retrying (if not allowed).
	RetryAfter time.Duration
}

// Config configures the rate limiter.
type Config struct {
	// Algorithm selects the rate limiting algorithm.
	Algorithm Algorithm

	// Limit is the maximum number of requests allowed per window.
	Limit int64

	// Window is the time window for rate limiting.
	Window time.Duration

	// Burst allows temporary exceedance of limit (token bucket only).
	// If 0, defaults to Limit.
	Burst int64

	// OnLimited is called when a request is rejected.
	OnLimited func(ctx context.Context, key string, result Result)
}

// Store is the interface for rate limit storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Allow checks if a request is allowed and consumes a token/slot.
	// Returns Result with decision and metadata.
	Allow(ctx context.Context, key string, config Config) (Result, error)

	// Reset resets the rate limit for a specific key.
	Reset(ctx context.Context, key string) error

	// Close releases any resources used by the store.
	Close() error
}

// Limiter decides whether a keyed request may proceed.
type Limiter interface {
	AllowKey(ctx context.Context, key string) (Result, error)
	ResetKey(ctx context.Context, key string) error
	Close() error
}

type limiter struct {
	store  Store
	config Config
}

func New(store Store, config Config) (Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("ratelimit: store is required")
	}
	if config.Limit <= 0 {
		return nil, fmt.Errorf("ratelimit: limit must be positive")
	}
	if config.Window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be positive")
	}
	if config.Algorithm == "" {
		config.Algorithm = AlgorithmTokenBucket
	}
	if config.Burst <= 0 {
		config.Burst = config.Limit
	}

	return &limiter{store: store, config: config}, nil
}

// ParseAlgorithm maps the config spelling to an Algorithm. Unknown values
// fall back to the token bucket.
func ParseAlgorithm(value string) Algorithm {
	switch Algorithm(strings.TrimSpace(strings.ToLower(value))) {
	case AlgorithmSlidingWindow:
		return AlgorithmSlidingWindow
	case AlgorithmFixedWindow:
		return AlgorithmFixedWindow
	default:
		return AlgorithmTokenBucket
	}
}

func (l *limiter) AllowKey(ctx context.Context, key string) (Result, error) {
	if strings.TrimSpace(key) == "" {
		return Result{}, fmt.Errorf("ratelimit: key is required")
	}

	result, err := l.store.Allow(ctx, key, l.config)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	if !result.Allowed && l.config.OnLimited != nil {
		l.config.OnLimited(ctx, key, result)
	}
	return result, nil
}

func (l *limiter) ResetKey(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}

func (l *limiter) Close() error {
	return l.store.Close()
}
