package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/domain/vo"
	"github.com/joshuarp/flight-admin/internal/fetch"
	configmocks "github.com/joshuarp/flight-admin/internal/mock/shared/config"
	"github.com/joshuarp/flight-admin/internal/session"
)

type fakeAuth struct {
	err error
}

func (f *fakeAuth) Login(_ context.Context, credentials domain.Credentials) (domain.UpstreamAuth, error) {
	if f.err != nil {
		return domain.UpstreamAuth{}, f.err
	}
	return domain.UpstreamAuth{
		Profile: domain.Profile{Name: "Watcher", Email: credentials.Email},
		Token:   session.Token{AccessToken: "a1", RefreshToken: "r1"},
	}, nil
}

type fakeFlights struct {
	calls chan domain.FlightFilter
	err   error
}

func (f *fakeFlights) ListFlights(ctx context.Context, token *session.Token, filter domain.FlightFilter) (domain.FlightPage, error) {
	select {
	case f.calls <- filter:
	case <-ctx.Done():
		return domain.FlightPage{}, &fetch.TransportError{Err: ctx.Err()}
	}
	if f.err != nil {
		return domain.FlightPage{}, f.err
	}
	return domain.FlightPage{Count: filter.Page, Resources: []domain.Flight{{ID: token.AccessToken}}}, nil
}

type WatcherSuite struct {
	suite.Suite

	cfg      *configmocks.ConfigProvider
	mu       sync.Mutex
	values   map[string]any
	onChange func()
	flights  *fakeFlights
	exchange session.ExchangeFunc
}

func (s *WatcherSuite) SetupTest() {
	s.cfg = configmocks.NewConfigProvider(s.T())
	s.values = map[string]any{
		"watch.email":        "watcher@example.com",
		"watch.password":     "secret",
		"watch.filters.page": 1,
		"watch.filters.size": 10,
		"watch.filters.code": "",
	}
	s.onChange = nil
	s.flights = &fakeFlights{calls: make(chan domain.FlightFilter, 8)}
	s.exchange = func(context.Context, session.Token) (session.Token, error) {
		return session.Token{AccessToken: "a2", RefreshToken: "r2"}, nil
	}

	s.cfg.EXPECT().GetString(mock.Anything).RunAndReturn(func(key string) string {
		s.mu.Lock()
		defer s.mu.Unlock()
		value, _ := s.values[key].(string)
		return value
	}).Maybe()
	s.cfg.EXPECT().GetInt(mock.Anything).RunAndReturn(func(key string) int {
		s.mu.Lock()
		defer s.mu.Unlock()
		value, _ := s.values[key].(int)
		return value
	}).Maybe()
	s.cfg.EXPECT().GetDuration("watch.interval").RunAndReturn(func(string) time.Duration {
		s.mu.Lock()
		defer s.mu.Unlock()
		value, _ := s.values["watch.interval"].(time.Duration)
		return value
	}).Maybe()
	s.cfg.EXPECT().OnChange(mock.Anything).Run(func(fn func()) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.onChange = fn
	}).Maybe()
}

func (s *WatcherSuite) set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *WatcherSuite) reload() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	require.NotNil(s.T(), fn)
	fn()
}

func (s *WatcherSuite) newWatcher(auth AuthAPI, observer func(fetch.State[domain.FlightPage])) *Watcher {
	watcher, err := New(Deps{
		Auth:    auth,
		Flights: s.flights,
		Exchanger: session.ExchangeFunc(func(ctx context.Context, current session.Token) (session.Token, error) {
			return s.exchange(ctx, current)
		}),
		Config:       s.cfg,
		FetchOptions: []fetch.Option{fetch.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Observer:     observer,
	})
	require.NoError(s.T(), err)
	return watcher
}

func (s *WatcherSuite) nextCall() domain.FlightFilter {
	select {
	case filter := <-s.flights.calls:
		return filter
	case <-time.After(2 * time.Second):
		s.T().Fatal("listing was not loaded")
		return domain.FlightFilter{}
	}
}

func (s *WatcherSuite) TestNew_RequiresDependencies() {
	_, err := New(Deps{})
	assert.ErrorContains(s.T(), err, "auth api is required")

	_, err = New(Deps{Auth: &fakeAuth{}, Flights: s.flights})
	assert.ErrorContains(s.T(), err, "token exchanger is required")
}

func (s *WatcherSuite) TestRun_FollowsConfigReloads() {
	watcher := s.newWatcher(&fakeAuth{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	assert.Equal(s.T(), domain.FlightFilter{Page: 1, Size: 10}, s.nextCall())

	// Changing the size starts over from page one even though the file says 3.
	s.set("watch.filters.size", 20)
	s.set("watch.filters.page", 3)
	s.reload()
	assert.Equal(s.T(), domain.FlightFilter{Page: 1, Size: 20}, s.nextCall())

	s.set("watch.filters.page", 2)
	s.reload()
	assert.Equal(s.T(), domain.FlightFilter{Page: 2, Size: 20}, s.nextCall())

	s.set("watch.filters.code", " GAR ")
	s.reload()
	assert.Equal(s.T(), domain.FlightFilter{Page: 1, Size: 20, Code: "GAR"}, s.nextCall())

	// A reload that changes nothing does not hit upstream.
	s.reload()
	select {
	case filter := <-s.flights.calls:
		s.T().Fatalf("unexpected reload with %+v", filter)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(s.T(), err)
	case <-time.After(2 * time.Second):
		s.T().Fatal("watcher did not stop")
	}
}

func (s *WatcherSuite) TestRun_IntervalReloadsQuietly() {
	s.set("watch.interval", 20*time.Millisecond)

	var mu sync.Mutex
	var statuses []fetch.Status
	watcher := s.newWatcher(&fakeAuth{}, func(state fetch.State[domain.FlightPage]) {
		mu.Lock()
		defer mu.Unlock()
		statuses = append(statuses, state.Status)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	s.nextCall()
	s.nextCall()
	s.nextCall()
	cancel()
	require.NoError(s.T(), <-done)

	mu.Lock()
	defer mu.Unlock()
	loading := 0
	for _, status := range statuses {
		if status == fetch.StatusLoading {
			loading++
		}
	}
	// Only the first load announces itself.
	assert.Equal(s.T(), 1, loading)
}

func (s *WatcherSuite) TestRun_StopsWhenSessionExpires() {
	s.flights.err = fetch.NewStatusError(http.StatusUnauthorized, []byte(`{"message":"jwt expired"}`))
	refreshErr := errors.New("refresh token revoked")
	s.exchange = func(context.Context, session.Token) (session.Token, error) {
		return session.Token{}, refreshErr
	}

	watcher := s.newWatcher(&fakeAuth{}, nil)

	done := make(chan error, 1)
	go func() { done <- watcher.Run(context.Background()) }()

	select {
	case err := <-done:
		require.Error(s.T(), err)
		assert.ErrorIs(s.T(), err, vo.ErrSessionExpired)
		assert.ErrorIs(s.T(), err, refreshErr)
	case <-time.After(2 * time.Second):
		s.T().Fatal("watcher did not stop")
	}
}

func (s *WatcherSuite) TestRun_LoginFailures() {
	s.Run("missing credentials", func() {
		s.SetupTest()
		s.set("watch.password", "")

		err := s.newWatcher(&fakeAuth{}, nil).Run(context.Background())
		assert.ErrorContains(s.T(), err, "watch.email and watch.password are required")
	})

	s.Run("upstream rejects login", func() {
		s.SetupTest()
		loginErr := fetch.NewStatusError(http.StatusUnauthorized, nil)

		err := s.newWatcher(&fakeAuth{err: loginErr}, nil).Run(context.Background())
		assert.ErrorIs(s.T(), err, loginErr)
		assert.ErrorContains(s.T(), err, "login failed")
	})
}

func TestWatcherSuite(t *testing.T) {
	suite.Run(t, new(WatcherSuite))
}

func TestFilterFeed_KeepsNewestFilter(t *testing.T) {
	feed := newFilterFeed(domain.FlightFilter{Page: 1, Size: 10})
	assert.Equal(t, domain.FlightFilter{Page: 1, Size: 10}, <-feed.updates())

	feed.push(domain.FlightFilter{Page: 4, Size: 10})
	feed.push(domain.FlightFilter{Page: 4, Size: 10, Code: "GA"})

	assert.Equal(t, domain.FlightFilter{Page: 1, Size: 10, Code: "GA"}, <-feed.updates())
	assert.Equal(t, domain.FlightFilter{Page: 1, Size: 10, Code: "GA"}, feed.current())
	select {
	case filter := <-feed.updates():
		t.Fatalf("stale filter %+v still queued", filter)
	default:
	}
}
