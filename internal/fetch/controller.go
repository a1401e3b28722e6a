// Package fetch runs one logical upstream operation at a time: it tracks
// loading/error/result state, refreshes credentials once after an upstream
// 401 and discards the outcome of attempts that were cancelled or superseded.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/joshuarp/flight-admin/internal/session"
	"github.com/joshuarp/flight-admin/internal/shared/uid"
)

// maxAttempts is the first attempt plus the single retry after a refresh.
const maxAttempts = 2

// Credentials supplies the token for an attempt and refreshes it after a 401.
type Credentials interface {
	Token(ctx context.Context) (*session.Token, error)
	Refresh(ctx context.Context, stale *session.Token) (*session.Token, error)
}

// Invoker performs the upstream call. token is nil for anonymous operations.
type Invoker[P, R any] func(ctx context.Context, token *session.Token, payload P) (R, error)

// Operation describes what a controller runs. It is read-only once the
// controller is built.
type Operation[P, R any] struct {
	Name   string
	Invoke Invoker[P, R]

	OnComplete func(result R, payload P)
	OnError    func(message string, raw []byte, payload P)

	// SideEffect runs after OnComplete on every success.
	SideEffect func(result R)
}

// Option configures a Controller.
type Option func(*settings)

type settings struct {
	logger   *slog.Logger
	ids      uid.UIDGenerator
	metrics  *Metrics
	messages *MessageExtractor
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator tags every call with an ID in the logs.
func WithIDGenerator(ids uid.UIDGenerator) Option {
	return func(s *settings) { s.ids = ids }
}

func WithMetrics(metrics *Metrics) Option {
	return func(s *settings) { s.metrics = metrics }
}

func WithMessageExtractor(messages *MessageExtractor) Option {
	return func(s *settings) {
		if messages != nil {
			s.messages = messages
		}
	}
}

// ExecOption tunes a single Execute call.
type ExecOption func(*execSettings)

type execSettings struct {
	announceLoading bool
}

// Quiet keeps the current status while the call runs. Used for background
// refreshes of data that is already on screen.
func Quiet() ExecOption {
	return func(s *execSettings) { s.announceLoading = false }
}

type listener[R any] struct {
	id uint64
	fn func(State[R])
}

// delivery is one state snapshot on its way to the listeners. seq orders
// snapshots in the order they were taken under the state lock.
type delivery[R any] struct {
	seq       uint64
	state     State[R]
	listeners []func(State[R])
}

// Controller owns the state of one operation. It is safe for concurrent use;
// a new Execute always supersedes the one still in flight.
type Controller[P, R any] struct {
	op    Operation[P, R]
	creds Credentials
	settings

	mu           sync.Mutex
	state        State[R]
	generation   uint64
	cancel       context.CancelFunc
	listeners    []listener[R]
	nextListener uint64
	seq          uint64

	// notifyMu guards the delivery queue. Snapshots older than the last one
	// delivered are dropped, so listeners never go back in time.
	notifyMu  sync.Mutex
	queue     []delivery[R]
	draining  bool
	delivered uint64
}

// New builds a controller. creds may be nil for anonymous operations such as
// login; those never refresh and surface a 401 like any other failure.
func New[P, R any](op Operation[P, R], creds Credentials, opts ...Option) (*Controller[P, R], error) {
	if op.Invoke == nil {
		return nil, errors.New("fetch: operation invoker is required")
	}
	if op.Name == "" {
		op.Name = "operation"
	}

	cfg := settings{
		logger:   slog.Default(),
		messages: defaultExtractor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Controller[P, R]{
		op:       op,
		creds:    creds,
		settings: cfg,
	}, nil
}

// Snapshot returns the current state.
func (c *Controller[P, R]) Snapshot() State[R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for every state transition, in registration order.
// The returned func removes it.
func (c *Controller[P, R]) Subscribe(fn func(State[R])) func() {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners = append(c.listeners, listener[R]{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Cancel signals the in-flight attempt, if any. Its outcome is discarded.
func (c *Controller[P, R]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Execute runs the operation for payload and blocks until it settles.
//
// A 401 on the first attempt refreshes the credentials and retries exactly
// once. A cancelled or superseded call returns an error matching ErrCancelled
// and leaves state and callbacks untouched. Every other outcome updates state
// and fires exactly one of OnComplete or OnError.
func (c *Controller[P, R]) Execute(ctx context.Context, payload P, opts ...ExecOption) (R, error) {
	return c.run(ctx, payload, nil, opts)
}

// run is Execute with an optional signal closed once the call has become the
// current generation.
func (c *Controller[P, R]) run(ctx context.Context, payload P, started chan<- struct{}, opts []ExecOption) (R, error) {
	exec := execSettings{announceLoading: true}
	for _, opt := range opts {
		opt(&exec)
	}

	attemptCtx, generation, release := c.begin(ctx, exec.announceLoading)
	defer release()
	if started != nil {
		close(started)
	}

	logger := c.logger.With("operation", c.op.Name, "call_id", c.callID(ctx))
	logger.Debug("request started", "announce_loading", exec.announceLoading)

	var zero R
	token, err := c.token(attemptCtx)
	if err != nil {
		return c.settle(attemptCtx, generation, payload, 1, zero, fmt.Errorf("fetch: failed to load credentials: %w", err), logger)
	}

	attempt := 1
	for {
		result, err := c.op.Invoke(attemptCtx, token, payload)
		if err == nil || attempt == maxAttempts || c.creds == nil || !IsAuthExpired(err) {
			return c.settle(attemptCtx, generation, payload, attempt, result, err, logger)
		}

		// Loading(attempt=1) -> RefreshingAuth -> Loading(attempt=2)
		if !c.advance(attemptCtx, generation) {
			return c.settle(attemptCtx, generation, payload, attempt, zero, err, logger)
		}
		attempt++
		c.metrics.retry(c.op.Name)
		logger.Debug("upstream rejected credentials, refreshing")

		token, err = c.creds.Refresh(attemptCtx, token)
		if err != nil {
			return c.settle(attemptCtx, generation, payload, attempt, zero, err, logger)
		}
	}
}

func (c *Controller[P, R]) token(ctx context.Context) (*session.Token, error) {
	if c.creds == nil {
		return nil, nil
	}
	return c.creds.Token(ctx)
}

func (c *Controller[P, R]) callID(ctx context.Context) string {
	if c.ids == nil {
		return ""
	}
	id, err := c.ids.Generate(ctx)
	if err != nil {
		c.logger.Warn("failed to generate call id", "error", err)
		return ""
	}
	return id
}

// begin supersedes the previous attempt and starts a new generation.
func (c *Controller[P, R]) begin(ctx context.Context, announceLoading bool) (context.Context, uint64, func()) {
	attemptCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.generation++
	generation := c.generation
	c.cancel = cancel

	c.state.Attempts = 1
	if announceLoading {
		c.state.Status = StatusLoading
		c.state.Error = ""
	}
	pending := c.publishLocked()
	c.mu.Unlock()

	c.deliver(pending)

	release := func() {
		cancel()
		c.mu.Lock()
		if c.generation == generation {
			c.cancel = nil
		}
		c.mu.Unlock()
	}
	return attemptCtx, generation, release
}

// advance records the move to the retry attempt. It reports false when the
// call was cancelled or superseded in the meantime.
func (c *Controller[P, R]) advance(ctx context.Context, generation uint64) bool {
	c.mu.Lock()
	if c.generation != generation || ctx.Err() != nil {
		c.mu.Unlock()
		return false
	}
	c.state.Attempts = maxAttempts
	pending := c.publishLocked()
	c.mu.Unlock()

	c.deliver(pending)
	return true
}

func (c *Controller[P, R]) settle(
	ctx context.Context,
	generation uint64,
	payload P,
	attempts int,
	result R,
	err error,
	logger *slog.Logger,
) (R, error) {
	var zero R

	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		c.metrics.outcome(c.op.Name, "superseded")
		logger.Debug("discarding superseded outcome")
		return zero, ErrSuperseded
	}
	if ctx.Err() != nil {
		c.mu.Unlock()
		c.metrics.outcome(c.op.Name, "cancelled")
		logger.Debug("discarding cancelled outcome")
		return zero, fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
	}

	var message string
	c.state.Attempts = attempts
	if err == nil {
		c.state.Status = StatusSucceeded
		c.state.Data = result
		c.state.Error = ""
		c.state.Completed = true
	} else {
		message = c.messages.Message(err)
		c.state.Status = StatusFailed
		c.state.Error = message
	}
	pending := c.publishLocked()
	c.mu.Unlock()

	c.deliver(pending)

	if err != nil {
		c.metrics.outcome(c.op.Name, "failed")
		logger.Warn("request failed", "attempts", attempts, "status_code", StatusCode(err), "error", err)
		if c.op.OnError != nil {
			c.op.OnError(message, RawBody(err), payload)
		}
		return zero, err
	}

	c.metrics.outcome(c.op.Name, "succeeded")
	logger.Debug("request succeeded", "attempts", attempts)
	if c.op.OnComplete != nil {
		c.op.OnComplete(result, payload)
	}
	if c.op.SideEffect != nil {
		c.op.SideEffect(result)
	}
	return result, nil
}

// publishLocked stamps the current state for delivery. c.mu must be held.
func (c *Controller[P, R]) publishLocked() delivery[R] {
	c.seq++
	return delivery[R]{seq: c.seq, state: c.state, listeners: c.listenersLocked()}
}

// deliver hands d to the listeners in seq order. Only one goroutine drains at
// a time; others enqueue and return. Listeners may call back into the
// controller.
func (c *Controller[P, R]) deliver(d delivery[R]) {
	c.notifyMu.Lock()
	i := len(c.queue)
	for i > 0 && c.queue[i-1].seq > d.seq {
		i--
	}
	c.queue = append(c.queue, delivery[R]{})
	copy(c.queue[i+1:], c.queue[i:])
	c.queue[i] = d

	if c.draining {
		c.notifyMu.Unlock()
		return
	}
	c.draining = true
	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		if next.seq <= c.delivered {
			continue
		}
		c.delivered = next.seq

		c.notifyMu.Unlock()
		notify(next.listeners, next.state)
		c.notifyMu.Lock()
	}
	c.draining = false
	c.notifyMu.Unlock()
}

func (c *Controller[P, R]) listenersLocked() []func(State[R]) {
	if len(c.listeners) == 0 {
		return nil
	}
	fns := make([]func(State[R]), len(c.listeners))
	for i, l := range c.listeners {
		fns[i] = l.fn
	}
	return fns
}

func notify[R any](listeners []func(State[R]), snapshot State[R]) {
	for _, fn := range listeners {
		fn(snapshot)
	}
}
