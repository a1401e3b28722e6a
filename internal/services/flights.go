package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/domain/vo"
	"github.com/joshuarp/flight-admin/internal/fetch"
	"github.com/joshuarp/flight-admin/internal/session"
)

const (
	flightCreatedMessage = "Flight created successfully!"
	flightUpdatedMessage = "Flight updated successfully!"
	flightDeletedMessage = "Flight deleted successfully!"
)

// FlightsAPI is the flights resource of the upstream API.
type FlightsAPI interface {
	ListFlights(ctx context.Context, token *session.Token, filter domain.FlightFilter) (domain.FlightPage, error)
	CodeAvailable(ctx context.Context, token *session.Token, code string) (bool, error)
	CreateFlight(ctx context.Context, token *session.Token, input domain.FlightInput) (domain.Flight, error)
	UpdateFlight(ctx context.Context, token *session.Token, input domain.FlightInput) (domain.Flight, error)
	DeleteFlight(ctx context.Context, token *session.Token, id string) error
	FlightPhoto(ctx context.Context, token *session.Token, id string) (domain.Photo, error)
}

// SessionCredentials binds upstream credentials to a gateway session.
type SessionCredentials interface {
	For(sessionID string) *session.Credentials
}

// FlightListings holds the listing controller of every session.
type FlightListings = SessionControllers[domain.FlightFilter, domain.FlightPage]

type FlightService struct {
	api          FlightsAPI
	store        session.Store
	credentials  SessionCredentials
	listings     *FlightListings
	fetchOptions FetchOptions
	logger       *slog.Logger
}

type FlightServiceDeps struct {
	API          FlightsAPI
	Store        session.Store
	Credentials  SessionCredentials
	Listings     *FlightListings
	FetchOptions FetchOptions
	Logger       *slog.Logger
}

func NewFlightService(deps FlightServiceDeps) *FlightService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	listings := deps.Listings
	if listings == nil {
		listings = NewSessionControllers[domain.FlightFilter, domain.FlightPage](0)
	}
	return &FlightService{
		api:          deps.API,
		store:        deps.Store,
		credentials:  deps.Credentials,
		listings:     listings,
		fetchOptions: deps.FetchOptions,
		logger:       logger,
	}
}

// ListFlights loads one page through the session's listing controller. A
// listing still in flight for the same session is superseded.
func (s *FlightService) ListFlights(ctx context.Context, sessionID string, filter domain.FlightFilter) (domain.FlightPage, error) {
	filter = filter.WithDefaults()
	if !filter.Valid() {
		return domain.FlightPage{}, vo.ErrInvalidFilter
	}
	if err := s.ensureSession(ctx, sessionID); err != nil {
		return domain.FlightPage{}, err
	}

	controller, err := s.listings.Get(sessionID, func() (*fetch.Controller[domain.FlightFilter, domain.FlightPage], error) {
		return fetch.New(fetch.Operation[domain.FlightFilter, domain.FlightPage]{
			Name:   "list_flights",
			Invoke: s.api.ListFlights,
			OnComplete: func(_ domain.FlightPage, filter domain.FlightFilter) {
				s.listings.Remember(sessionID, filter)
			},
		}, s.credentials.For(sessionID), s.fetchOptions...)
	})
	if err != nil {
		return domain.FlightPage{}, fmt.Errorf("service: failed to build listing controller: %w", err)
	}

	return controller.Execute(ctx, filter)
}

func (s *FlightService) CheckCode(ctx context.Context, sessionID, code string) (vo.CodeAvailability, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return vo.CodeAvailability{}, fmt.Errorf("%w: code is required", vo.ErrInvalidFlight)
	}
	if err := s.ensureSession(ctx, sessionID); err != nil {
		return vo.CodeAvailability{}, err
	}

	available, err := s.codeAvailable(ctx, sessionID, code)
	if err != nil {
		return vo.CodeAvailability{}, err
	}
	return vo.CodeAvailability{Code: code, Available: available}, nil
}

// SaveFlight creates or updates a flight. A new code is checked for
// availability first; a taken code stops the save with vo.ErrCodeTaken.
func (s *FlightService) SaveFlight(ctx context.Context, sessionID string, input domain.FlightInput) (vo.FlightSaved, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.Code = strings.TrimSpace(input.Code)
	if problems := input.Problems(); len(problems) > 0 {
		return vo.FlightSaved{}, fmt.Errorf("%w: %s", vo.ErrInvalidFlight, strings.Join(problems, "; "))
	}
	if err := s.ensureSession(ctx, sessionID); err != nil {
		return vo.FlightSaved{}, err
	}

	if input.CodeChanged() {
		available, err := s.codeAvailable(ctx, sessionID, input.Code)
		if err != nil {
			return vo.FlightSaved{}, err
		}
		if !available {
			return vo.FlightSaved{}, vo.ErrCodeTaken
		}
	}

	op := fetch.Operation[domain.FlightInput, domain.Flight]{Name: "create_flight", Invoke: s.api.CreateFlight}
	message := flightCreatedMessage
	if input.IsUpdate() {
		op = fetch.Operation[domain.FlightInput, domain.Flight]{Name: "update_flight", Invoke: s.api.UpdateFlight}
		message = flightUpdatedMessage
	}

	controller, err := fetch.New(op, s.credentials.For(sessionID), s.fetchOptions...)
	if err != nil {
		return vo.FlightSaved{}, fmt.Errorf("service: failed to build save controller: %w", err)
	}

	flight, err := controller.Execute(ctx, input)
	if err != nil {
		return vo.FlightSaved{}, err
	}
	return vo.FlightSaved{Flight: flight, Created: !input.IsUpdate(), Message: message}, nil
}

// DeleteFlight removes a flight and, when the session has listed flights
// before, reloads that listing without announcing loading.
func (s *FlightService) DeleteFlight(ctx context.Context, sessionID, id string) (vo.FlightDeleted, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vo.FlightDeleted{}, fmt.Errorf("%w: id is required", vo.ErrInvalidFlight)
	}
	if err := s.ensureSession(ctx, sessionID); err != nil {
		return vo.FlightDeleted{}, err
	}

	controller, err := fetch.New(fetch.Operation[string, struct{}]{
		Name: "delete_flight",
		Invoke: func(ctx context.Context, token *session.Token, id string) (struct{}, error) {
			return struct{}{}, s.api.DeleteFlight(ctx, token, id)
		},
	}, s.credentials.For(sessionID), s.fetchOptions...)
	if err != nil {
		return vo.FlightDeleted{}, fmt.Errorf("service: failed to build delete controller: %w", err)
	}

	if _, err := controller.Execute(ctx, id); err != nil {
		return vo.FlightDeleted{}, err
	}

	result := vo.FlightDeleted{ID: id, Message: flightDeletedMessage}
	if listing, filter, ok := s.listings.Last(sessionID); ok {
		page, err := listing.Execute(ctx, filter, fetch.Quiet())
		switch {
		case err == nil:
			result.Flights = &page
		case errors.Is(err, fetch.ErrCancelled):
			s.logger.Debug("listing reload superseded", "session_id", sessionID)
		default:
			s.logger.Warn("failed to reload listing after delete", "session_id", sessionID, "error", err)
		}
	}
	return result, nil
}

func (s *FlightService) FlightPhoto(ctx context.Context, sessionID, id string) (domain.Photo, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Photo{}, fmt.Errorf("%w: id is required", vo.ErrInvalidFlight)
	}
	if err := s.ensureSession(ctx, sessionID); err != nil {
		return domain.Photo{}, err
	}

	controller, err := fetch.New(fetch.Operation[string, domain.Photo]{
		Name:   "flight_photo",
		Invoke: s.api.FlightPhoto,
	}, s.credentials.For(sessionID), s.fetchOptions...)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("service: failed to build photo controller: %w", err)
	}
	return controller.Execute(ctx, id)
}

func (s *FlightService) codeAvailable(ctx context.Context, sessionID, code string) (bool, error) {
	controller, err := fetch.New(fetch.Operation[string, bool]{
		Name:   "check_code",
		Invoke: s.api.CodeAvailable,
	}, s.credentials.For(sessionID), s.fetchOptions...)
	if err != nil {
		return false, fmt.Errorf("service: failed to build code check controller: %w", err)
	}
	return controller.Execute(ctx, code)
}

// ensureSession fails fast when the session has been logged out or torn down.
func (s *FlightService) ensureSession(ctx context.Context, sessionID string) error {
	token, err := s.store.GetToken(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionRequired) {
			return vo.ErrSessionNotFound
		}
		return fmt.Errorf("service: failed to load session: %w", err)
	}
	if token == nil {
		return vo.ErrSessionExpired
	}
	return nil
}
