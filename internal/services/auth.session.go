package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/domain/vo"
	"github.com/joshuarp/flight-admin/internal/fetch"
	"github.com/joshuarp/flight-admin/internal/session"
	sharedjwt "github.com/joshuarp/flight-admin/internal/shared/jwt"
	"github.com/joshuarp/flight-admin/internal/shared/uid"
)

// AuthAPI is the part of the flights API that signs users in.
type AuthAPI interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.UpstreamAuth, error)
	Register(ctx context.Context, registration domain.Registration) (domain.UpstreamAuth, error)
}

// SessionForgetter drops per-session state kept outside the token store.
type SessionForgetter interface {
	Forget(sessionID string)
}

// FetchOptions is shared by every controller a service builds.
type FetchOptions []fetch.Option

type AuthSessionService struct {
	api          AuthAPI
	store        session.Store
	ids          uid.UIDGenerator
	tokenManager sharedjwt.TokenManager
	forgetters   []SessionForgetter
	sessionTTL   time.Duration
	fetchOptions FetchOptions
	logger       *slog.Logger
	now          func() time.Time
}

type AuthSessionDeps struct {
	API          AuthAPI
	Store        session.Store
	IDs          uid.UIDGenerator
	TokenManager sharedjwt.TokenManager
	Forgetters   []SessionForgetter

	// SessionTTL is reported back as the gateway token expiry. Zero omits it.
	SessionTTL   time.Duration
	FetchOptions FetchOptions
	Logger       *slog.Logger
}

func NewAuthSessionService(deps AuthSessionDeps) *AuthSessionService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthSessionService{
		api:          deps.API,
		store:        deps.Store,
		ids:          deps.IDs,
		tokenManager: deps.TokenManager,
		forgetters:   deps.Forgetters,
		sessionTTL:   deps.SessionTTL,
		fetchOptions: deps.FetchOptions,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *AuthSessionService) Login(ctx context.Context, credentials domain.Credentials) (vo.AuthSession, error) {
	credentials.Email = strings.TrimSpace(strings.ToLower(credentials.Email))
	if credentials.Email == "" || strings.TrimSpace(credentials.Password) == "" {
		return vo.AuthSession{}, vo.ErrInvalidCredentials
	}

	controller, err := fetch.New(fetch.Operation[domain.Credentials, domain.UpstreamAuth]{
		Name: "login",
		Invoke: func(ctx context.Context, _ *session.Token, credentials domain.Credentials) (domain.UpstreamAuth, error) {
			return s.api.Login(ctx, credentials)
		},
	}, nil, s.fetchOptions...)
	if err != nil {
		return vo.AuthSession{}, fmt.Errorf("service: failed to build login controller: %w", err)
	}

	auth, err := controller.Execute(ctx, credentials)
	if err != nil {
		return vo.AuthSession{}, err
	}
	return s.open(ctx, auth)
}

// Register creates the upstream account and signs the new user in.
func (s *AuthSessionService) Register(ctx context.Context, registration domain.Registration) (vo.AuthSession, error) {
	registration.Name = strings.TrimSpace(registration.Name)
	registration.Email = strings.TrimSpace(strings.ToLower(registration.Email))
	if registration.Name == "" || registration.Email == "" || strings.TrimSpace(registration.Password) == "" {
		return vo.AuthSession{}, vo.ErrInvalidCredentials
	}

	controller, err := fetch.New(fetch.Operation[domain.Registration, domain.UpstreamAuth]{
		Name: "register",
		Invoke: func(ctx context.Context, _ *session.Token, registration domain.Registration) (domain.UpstreamAuth, error) {
			return s.api.Register(ctx, registration)
		},
	}, nil, s.fetchOptions...)
	if err != nil {
		return vo.AuthSession{}, fmt.Errorf("service: failed to build register controller: %w", err)
	}

	auth, err := controller.Execute(ctx, registration)
	if err != nil {
		return vo.AuthSession{}, err
	}
	return s.open(ctx, auth)
}

// Logout clears the stored upstream credentials of the session.
func (s *AuthSessionService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to clear session: %w", err)
	}
	for _, forgetter := range s.forgetters {
		forgetter.Forget(sessionID)
	}
	s.logger.Info("session closed", "session_id", sessionID)
	return nil
}

// open stores the upstream token pair under a new session ID and issues the
// gateway token that refers to it.
func (s *AuthSessionService) open(ctx context.Context, auth domain.UpstreamAuth) (vo.AuthSession, error) {
	if !auth.Token.Valid() {
		return vo.AuthSession{}, fmt.Errorf("service: upstream returned no access token")
	}

	sessionID, err := s.ids.Generate(ctx)
	if err != nil {
		return vo.AuthSession{}, fmt.Errorf("service: failed to generate session id: %w", err)
	}

	if err := s.store.SetToken(ctx, sessionID, auth.Token); err != nil {
		return vo.AuthSession{}, fmt.Errorf("service: failed to store session: %w", err)
	}

	claims := sharedjwt.Claims{Subject: sessionID, Email: auth.Email}
	var expiresAt time.Time
	if s.sessionTTL > 0 {
		expiresAt = s.now().Add(s.sessionTTL).UTC().Truncate(time.Second)
		claims.ExpiresAt = expiresAt
	}

	token, err := s.tokenManager.Sign(ctx, claims)
	if err != nil {
		if clearErr := s.store.Clear(ctx, sessionID); clearErr != nil {
			s.logger.Error("failed to clear unsigned session", "session_id", sessionID, "error", clearErr)
		}
		return vo.AuthSession{}, fmt.Errorf("service: failed to issue token: %w", err)
	}

	s.logger.Info("session opened", "session_id", sessionID, "email", auth.Email)
	return vo.AuthSession{
		SessionToken: token,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
		Name:         auth.Name,
		Email:        auth.Email,
	}, nil
}
