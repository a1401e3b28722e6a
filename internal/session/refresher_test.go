package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type failingStore struct {
	MemoryStore
	getErr error
}

func (s *failingStore) GetToken(ctx context.Context, sessionID string) (*Token, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.MemoryStore.GetToken(ctx, sessionID)
}

type RefresherSuite struct {
	suite.Suite

	store    *MemoryStore
	registry *prometheus.Registry
	metrics  *RefreshMetrics
	calls    atomic.Int32
	expired  []string
	mu       sync.Mutex
}

func (s *RefresherSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.registry = prometheus.NewRegistry()
	metrics, err := NewRefreshMetrics(s.registry)
	require.NoError(s.T(), err)
	s.metrics = metrics
	s.calls.Store(0)
	s.expired = nil
}

func (s *RefresherSuite) newRefresher(exchange ExchangeFunc) *Refresher {
	refresher, err := NewRefresher(RefresherConfig{
		Store: s.store,
		Exchanger: ExchangeFunc(func(ctx context.Context, current Token) (Token, error) {
			s.calls.Add(1)
			return exchange(ctx, current)
		}),
		OnExpired: func(_ context.Context, sessionID string, _ error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.expired = append(s.expired, sessionID)
		},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: s.metrics,
	})
	require.NoError(s.T(), err)
	return refresher
}

func (s *RefresherSuite) TestNewRefresher_RequiresDependencies() {
	_, err := NewRefresher(RefresherConfig{Exchanger: ExchangeFunc(nil)})
	assert.ErrorContains(s.T(), err, "store is required")

	_, err = NewRefresher(RefresherConfig{Store: s.store})
	assert.ErrorContains(s.T(), err, "exchanger is required")
}

func (s *RefresherSuite) TestRefresh_StoresNewPair() {
	require.NoError(s.T(), s.store.SetToken(context.Background(), "sess-1", Token{AccessToken: "old", RefreshToken: "r1"}))

	refresher := s.newRefresher(func(_ context.Context, current Token) (Token, error) {
		assert.Equal(s.T(), "r1", current.RefreshToken)
		return Token{AccessToken: "new", RefreshToken: "r2"}, nil
	})

	token, err := refresher.Refresh(context.Background(), "sess-1", &Token{AccessToken: "old"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "new", token.AccessToken)

	stored, err := s.store.GetToken(context.Background(), "sess-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), Token{AccessToken: "new", RefreshToken: "r2"}, *stored)
	assert.Equal(s.T(), float64(1), testutil.ToFloat64(s.metrics.total.WithLabelValues("refreshed")))
	assert.Empty(s.T(), s.expired)
}

func (s *RefresherSuite) TestRefresh_KeepsRefreshTokenWhenNoneReturned() {
	require.NoError(s.T(), s.store.SetToken(context.Background(), "sess-1", Token{AccessToken: "old", RefreshToken: "r1"}))

	refresher := s.newRefresher(func(context.Context, Token) (Token, error) {
		return Token{AccessToken: "new"}, nil
	})

	_, err := refresher.Refresh(context.Background(), "sess-1", nil)
	require.NoError(s.T(), err)

	stored, _ := s.store.GetToken(context.Background(), "sess-1")
	assert.Equal(s.T(), "r1", stored.RefreshToken)
}

func (s *RefresherSuite) TestRefresh_ConcurrentCallersShareOneExchange() {
	require.NoError(s.T(), s.store.SetToken(context.Background(), "sess-1", Token{AccessToken: "old", RefreshToken: "r1"}))

	release := make(chan struct{})
	refresher := s.newRefresher(func(context.Context, Token) (Token, error) {
		<-release
		return Token{AccessToken: "new", RefreshToken: "r2"}, nil
	})

	const callers = 5
	var wg sync.WaitGroup
	results := make(chan string, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := refresher.Refresh(context.Background(), "sess-1", &Token{AccessToken: "old"})
			if err == nil {
				results <- token.AccessToken
			}
		}()
	}

	// Let every caller join the shared flight before it finishes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for access := range results {
		assert.Equal(s.T(), "new", access)
	}
	assert.Equal(s.T(), int32(1), s.calls.Load())
}

func (s *RefresherSuite) TestRefresh_ReusesTokenRefreshedByAnotherCaller() {
	require.NoError(s.T(), s.store.SetToken(context.Background(), "sess-1", Token{AccessToken: "fresh", RefreshToken: "r2"}))

	refresher := s.newRefresher(func(context.Context, Token) (Token, error) {
		return Token{}, errors.New("must not be called")
	})

	token, err := refresher.Refresh(context.Background(), "sess-1", &Token{AccessToken: "stale"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "fresh", token.AccessToken)
	assert.Zero(s.T(), s.calls.Load())
	assert.Equal(s.T(), float64(1), testutil.ToFloat64(s.metrics.total.WithLabelValues("reused")))
}

func (s *RefresherSuite) TestRefresh_FailureTearsSessionDownOnce() {
	require.NoError(s.T(), s.store.SetToken(context.Background(), "sess-1", Token{AccessToken: "old", RefreshToken: "r1"}))

	release := make(chan struct{})
	refreshErr := errors.New("refresh token revoked")
	refresher := s.newRefresher(func(context.Context, Token) (Token, error) {
		<-release
		return Token{}, refreshErr
	})

	var wg sync.WaitGroup
	errs := make(chan error, 3)
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := refresher.Refresh(context.Background(), "sess-1", &Token{AccessToken: "old"})
			errs <- err
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.Error(s.T(), err)
		assert.True(s.T(), IsRefreshFailure(err))
		assert.True(s.T(), IsExpired(err))
		assert.ErrorIs(s.T(), err, refreshErr)
	}

	stored, err := s.store.GetToken(context.Background(), "sess-1")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), stored)
	assert.Equal(s.T(), []string{"sess-1"}, s.expired)
	assert.Equal(s.T(), int32(1), s.calls.Load())
}

func (s *RefresherSuite) TestRefresh_EmptyAccessTokenExpires() {
	require.NoError(s.T(), s.store.SetToken(context.Background(), "sess-1", Token{AccessToken: "old", RefreshToken: "r1"}))

	refresher := s.newRefresher(func(context.Context, Token) (Token, error) {
		return Token{AccessToken: "  ", RefreshToken: "r2"}, nil
	})

	_, err := refresher.Refresh(context.Background(), "sess-1", &Token{AccessToken: "old"})
	require.Error(s.T(), err)
	assert.True(s.T(), IsExpired(err))
	assert.ErrorIs(s.T(), err, ErrEmptyAccessToken)

	stored, err := s.store.GetToken(context.Background(), "sess-1")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), stored)
	assert.Equal(s.T(), []string{"sess-1"}, s.expired)
	assert.Equal(s.T(), float64(1), testutil.ToFloat64(s.metrics.total.WithLabelValues("expired")))
}

func (s *RefresherSuite) TestRefresh_NoRefreshTokenExpires() {
	refresher := s.newRefresher(func(context.Context, Token) (Token, error) {
		return Token{}, errors.New("must not be called")
	})

	_, err := refresher.Refresh(context.Background(), "sess-1", nil)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, ErrNoRefreshToken)
	assert.Equal(s.T(), []string{"sess-1"}, s.expired)
	assert.Zero(s.T(), s.calls.Load())
}

func (s *RefresherSuite) TestRefresh_StoreReadFailureDoesNotTearDown() {
	readErr := errors.New("redis unavailable")
	store := &failingStore{MemoryStore: MemoryStore{tokens: map[string]Token{}}, getErr: readErr}

	var expired atomic.Bool
	refresher, err := NewRefresher(RefresherConfig{
		Store: store,
		Exchanger: ExchangeFunc(func(context.Context, Token) (Token, error) {
			return Token{}, nil
		}),
		OnExpired: func(context.Context, string, error) { expired.Store(true) },
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(s.T(), err)

	_, err = refresher.Refresh(context.Background(), "sess-1", nil)
	require.Error(s.T(), err)
	assert.True(s.T(), IsRefreshFailure(err))
	assert.False(s.T(), IsExpired(err))
	assert.ErrorIs(s.T(), err, readErr)
	assert.False(s.T(), expired.Load())
}

func (s *RefresherSuite) TestRefresh_CallerCancellationDoesNotAbortSharedFlight() {
	require.NoError(s.T(), s.store.SetToken(context.Background(), "sess-1", Token{AccessToken: "old", RefreshToken: "r1"}))

	release := make(chan struct{})
	refresher := s.newRefresher(func(ctx context.Context, _ Token) (Token, error) {
		<-release
		if ctx.Err() != nil {
			return Token{}, ctx.Err()
		}
		return Token{AccessToken: "new", RefreshToken: "r2"}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := refresher.Refresh(ctx, "sess-1", nil)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(s.T(), <-errCh, context.Canceled)

	close(release)
	assert.Eventually(s.T(), func() bool {
		stored, _ := s.store.GetToken(context.Background(), "sess-1")
		return stored != nil && stored.AccessToken == "new"
	}, time.Second, 10*time.Millisecond)
	assert.Empty(s.T(), s.expired)
}

func (s *RefresherSuite) TestCredentials_BindSession() {
	require.NoError(s.T(), s.store.SetToken(context.Background(), "sess-7", Token{AccessToken: "a7", RefreshToken: "r7"}))

	refresher := s.newRefresher(func(context.Context, Token) (Token, error) {
		return Token{AccessToken: "a8", RefreshToken: "r8"}, nil
	})
	creds := refresher.For("sess-7")

	token, err := creds.Token(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "a7", token.AccessToken)

	token, err = creds.Refresh(context.Background(), token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "a8", token.AccessToken)
}

func (s *RefresherSuite) TestNewRefreshMetrics_ReusesRegisteredCollector() {
	again, err := NewRefreshMetrics(s.registry)
	require.NoError(s.T(), err)
	assert.Same(s.T(), s.metrics.total, again.total)
}

func TestRefresherSuite(t *testing.T) {
	suite.Run(t, new(RefresherSuite))
}

func TestToken_Helpers(t *testing.T) {
	var missing *Token
	assert.False(t, missing.Valid())
	assert.False(t, (&Token{AccessToken: "  "}).Valid())
	assert.True(t, (&Token{AccessToken: "a"}).Valid())

	assert.True(t, missing.SameAccess(nil))
	assert.False(t, missing.SameAccess(&Token{}))
	assert.True(t, (&Token{AccessToken: "a", RefreshToken: "x"}).SameAccess(&Token{AccessToken: "a"}))
}
