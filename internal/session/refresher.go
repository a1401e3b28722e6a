package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// Exchanger trades the current token pair for a fresh one. The upstream
// client's /auth/refresh call implements it.
type Exchanger interface {
	Refresh(ctx context.Context, current Token) (Token, error)
}

// ExchangeFunc adapts a function to Exchanger.
type ExchangeFunc func(ctx context.Context, current Token) (Token, error)

func (f ExchangeFunc) Refresh(ctx context.Context, current Token) (Token, error) {
	return f(ctx, current)
}

// ExpiryHandler tears a session down after its credentials could not be refreshed.
type ExpiryHandler func(ctx context.Context, sessionID string, cause error)

// RefreshError reports a failed refresh. It is always terminal for the
// operation that requested the refresh.
type RefreshError struct {
	Err error

	// Expired is set when the session was torn down as a result.
	Expired bool
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("session: refresh failed: %v", e.Err)
}

func (e *RefreshError) Unwrap() error { return e.Err }

// IsRefreshFailure reports whether err came out of the refresh flow.
func IsRefreshFailure(err error) bool {
	var refreshErr *RefreshError
	return errors.As(err, &refreshErr)
}

// IsExpired reports whether err means the session no longer has usable
// credentials and the user has to sign in again.
func IsExpired(err error) bool {
	var refreshErr *RefreshError
	return errors.As(err, &refreshErr) && refreshErr.Expired
}

// RefresherConfig configures a Refresher.
type RefresherConfig struct {
	Store     Store
	Exchanger Exchanger

	// OnExpired runs once per failed refresh, after the stored token is cleared.
	OnExpired ExpiryHandler

	Logger  *slog.Logger
	Metrics *RefreshMetrics
}

// Refresher is the single mutator of stored tokens after login. Concurrent
// refreshes of the same session collapse into one upstream call whose outcome
// every caller observes.
type Refresher struct {
	store     Store
	exchanger Exchanger
	onExpired ExpiryHandler
	logger    *slog.Logger
	metrics   *RefreshMetrics
	group     singleflight.Group
}

func NewRefresher(cfg RefresherConfig) (*Refresher, error) {
	if cfg.Store == nil {
		return nil, errors.New("session: store is required")
	}
	if cfg.Exchanger == nil {
		return nil, errors.New("session: exchanger is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Refresher{
		store:     cfg.Store,
		exchanger: cfg.Exchanger,
		onExpired: cfg.OnExpired,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
	}, nil
}

// Refresh returns a fresh token for the session. stale is the token the
// caller was rejected with; when the store already holds a different access
// token the stored one is returned without contacting upstream.
func (r *Refresher) Refresh(ctx context.Context, sessionID string, stale *Token) (*Token, error) {
	id, err := normalizeID(sessionID)
	if err != nil {
		return nil, &RefreshError{Err: err}
	}

	// The shared refresh must not die with whichever waiter started it.
	resultCh := r.group.DoChan(id, func() (any, error) {
		return r.refresh(context.WithoutCancel(ctx), id, stale)
	})

	select {
	case result := <-resultCh:
		if result.Err != nil {
			return nil, result.Err
		}
		token := result.Val.(Token)
		return &token, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *Refresher) refresh(ctx context.Context, sessionID string, stale *Token) (Token, error) {
	current, err := r.store.GetToken(ctx, sessionID)
	if err != nil {
		r.metrics.observe("store_error")
		return Token{}, &RefreshError{Err: fmt.Errorf("session: failed to load token: %w", err)}
	}

	if stale != nil && current.Valid() && !current.SameAccess(stale) {
		r.metrics.observe("reused")
		r.logger.Debug("token already refreshed by another caller", "session_id", sessionID)
		return *current, nil
	}

	if current == nil || strings.TrimSpace(current.RefreshToken) == "" {
		r.expire(ctx, sessionID, ErrNoRefreshToken)
		return Token{}, &RefreshError{Err: ErrNoRefreshToken, Expired: true}
	}

	next, err := r.exchanger.Refresh(ctx, *current)
	if err != nil {
		r.expire(ctx, sessionID, err)
		return Token{}, &RefreshError{Err: err, Expired: true}
	}
	if !next.Valid() {
		r.expire(ctx, sessionID, ErrEmptyAccessToken)
		return Token{}, &RefreshError{Err: ErrEmptyAccessToken, Expired: true}
	}

	if next.RefreshToken == "" {
		next.RefreshToken = current.RefreshToken
	}

	if err := r.store.SetToken(ctx, sessionID, next); err != nil {
		r.metrics.observe("store_error")
		return Token{}, &RefreshError{Err: fmt.Errorf("session: failed to store refreshed token: %w", err)}
	}

	r.metrics.observe("refreshed")
	r.logger.Info("upstream token refreshed", "session_id", sessionID)
	return next, nil
}

func (r *Refresher) expire(ctx context.Context, sessionID string, cause error) {
	r.metrics.observe("expired")
	r.logger.Warn("upstream session expired", "session_id", sessionID, "error", cause)

	if err := r.store.Clear(ctx, sessionID); err != nil {
		r.logger.Error("failed to clear expired session", "session_id", sessionID, "error", err)
	}
	if r.onExpired != nil {
		r.onExpired(ctx, sessionID, cause)
	}
}

// For binds the refresher to one session.
func (r *Refresher) For(sessionID string) *Credentials {
	return &Credentials{SessionID: sessionID, store: r.store, refresher: r}
}

// Credentials is the per-session view used by request controllers.
type Credentials struct {
	SessionID string

	store     Store
	refresher *Refresher
}

func (c *Credentials) Token(ctx context.Context) (*Token, error) {
	return c.store.GetToken(ctx, c.SessionID)
}

func (c *Credentials) Refresh(ctx context.Context, stale *Token) (*Token, error) {
	return c.refresher.Refresh(ctx, c.SessionID, stale)
}

// RefreshMetrics counts refresh outcomes. A nil *RefreshMetrics is a no-op.
type RefreshMetrics struct {
	total *prometheus.CounterVec
}

func NewRefreshMetrics(reg prometheus.Registerer) (*RefreshMetrics, error) {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_refresh_total",
		Help: "Upstream token refresh attempts by outcome.",
	}, []string{"outcome"})

	if reg != nil {
		if err := reg.Register(total); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return nil, fmt.Errorf("session: failed to register metrics: %w", err)
			}
			total = already.ExistingCollector.(*prometheus.CounterVec)
		}
	}

	return &RefreshMetrics{total: total}, nil
}

func (m *RefreshMetrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(outcome).Inc()
}
