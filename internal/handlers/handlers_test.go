package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/domain/vo"
	"github.com/joshuarp/flight-admin/internal/fetch"
	"github.com/joshuarp/flight-admin/internal/middlewares"
	handlermocks "github.com/joshuarp/flight-admin/internal/mock/handlers"
	"github.com/joshuarp/flight-admin/internal/session"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func performJSONRequest(app *fiber.App, method, path string, body []byte, headers map[string]string) (*http.Response, map[string]interface{}, []byte) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, nil
	}

	defer resp.Body.Close()
	rawBody, _ := io.ReadAll(resp.Body)
	parsed := map[string]interface{}{}
	_ = json.Unmarshal(rawBody, &parsed)

	return resp, parsed, rawBody
}

func withSession(sessionID string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if sessionID != "" {
			c.Locals(middlewares.LocalSessionID, sessionID)
		}
		return c.Next()
	}
}

type AuthSessionHandlerSuite struct {
	suite.Suite

	service *handlermocks.AuthSessionService
	app     *fiber.App
}

func (s *AuthSessionHandlerSuite) SetupTest() {
	s.service = handlermocks.NewAuthSessionService(s.T())
	handler := NewAuthSessionHandler(s.service, NewErrorResponder(nil, newTestLogger()))

	s.app = fiber.New()
	handler.Register(s.app)
	protected := s.app.Group("", withSession("sess-1"))
	handler.RegisterProtected(protected)
}

func (s *AuthSessionHandlerSuite) TestLogin_TableDriven() {
	expiresAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "invalid body",
			body: []byte(`{"email":`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid request body", payload["error"])
			},
		},
		{
			name: "missing password",
			body: []byte(`{"email":"ada@example.com","password":"  "}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "email and password are required", payload["error"])
			},
		},
		{
			name: "upstream rejects credentials",
			body: []byte(`{"email":"ada@example.com","password":"wrong"}`),
			setupMock: func() {
				s.service.EXPECT().Login(mock.Anything, domain.Credentials{Email: "ada@example.com", Password: "wrong"}).
					Return(vo.AuthSession{}, fetch.NewStatusError(http.StatusUnauthorized, []byte(`{"message":"Invalid email or password"}`)))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "Invalid email or password", payload["error"])
			},
		},
		{
			name: "success",
			body: []byte(`{"email":"ada@example.com","password":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().Login(mock.Anything, domain.Credentials{Email: "ada@example.com", Password: "secret"}).
					Return(vo.AuthSession{SessionToken: "jwt", TokenType: "Bearer", ExpiresAt: expiresAt, Name: "Ada", Email: "ada@example.com"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "jwt", payload["session_token"])
				assert.Equal(s.T(), "Bearer", payload["token_type"])
				assert.Equal(s.T(), "Ada", payload["name"])
				assert.Equal(s.T(), "2026-10-19T12:00:00Z", payload["expires_at"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/auth/login", tc.body, nil)
			require.NotNil(s.T(), resp)
			tc.assertion(resp, payload)
		})
	}
}

func (s *AuthSessionHandlerSuite) TestSignUp_TableDriven() {
	tests := []struct {
		name      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "missing name",
			body: []byte(`{"email":"ada@example.com","password":"secret"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "name, email and password are required", payload["error"])
			},
		},
		{
			name: "email already registered",
			body: []byte(`{"name":"Ada","email":"ada@example.com","password":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().Register(mock.Anything, mock.Anything).
					Return(vo.AuthSession{}, fetch.NewStatusError(http.StatusConflict, []byte(`{"message":"Email already registered"}`)))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
				assert.Equal(s.T(), "Email already registered", payload["error"])
			},
		},
		{
			name: "creates session",
			body: []byte(`{"name":"Ada","email":"ada@example.com","password":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().Register(mock.Anything, domain.Registration{Name: "Ada", Email: "ada@example.com", Password: "secret"}).
					Return(vo.AuthSession{SessionToken: "jwt", TokenType: "Bearer", Name: "Ada"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.Equal(s.T(), "jwt", payload["session_token"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/auth/register", tc.body, nil)
			require.NotNil(s.T(), resp)
			tc.assertion(resp, payload)
		})
	}
}

func (s *AuthSessionHandlerSuite) TestLogout() {
	s.service.EXPECT().Logout(mock.Anything, "sess-1").Return(nil)

	resp, _, raw := performJSONRequest(s.app, http.MethodPost, "/auth/logout", nil, nil)
	require.NotNil(s.T(), resp)
	assert.Equal(s.T(), fiber.StatusNoContent, resp.StatusCode)
	assert.Empty(s.T(), raw)
}

func TestAuthSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthSessionHandlerSuite))
}

type FlightHandlerSuite struct {
	suite.Suite

	service   *handlermocks.FlightService
	sessionID string
	app       *fiber.App
}

func (s *FlightHandlerSuite) SetupTest() {
	s.service = handlermocks.NewFlightService(s.T())
	s.sessionID = "sess-1"
	s.buildApp()
}

func (s *FlightHandlerSuite) buildApp() {
	responder := NewErrorResponder(nil, newTestLogger())

	s.app = fiber.New()
	s.app.Use(func(c fiber.Ctx) error {
		return withSession(s.sessionID)(c)
	})
	NewFlightReadHandler(s.service, responder).Register(s.app)
	NewFlightWriteHandler(s.service, responder).Register(s.app)
}

func (s *FlightHandlerSuite) TestList_TableDriven() {
	page := domain.FlightPage{Resources: []domain.Flight{{ID: "f-1", Code: "GARUDA", Capacity: 180, DepartureDate: "2026-11-01"}}, Count: 1}

	tests := []struct {
		name      string
		path      string
		sessionID string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name:      "passes query filter",
			path:      "/flights?page=2&size=5&code=GAR",
			sessionID: "sess-1",
			setupMock: func() {
				s.service.EXPECT().ListFlights(mock.Anything, "sess-1", domain.FlightFilter{Page: 2, Size: 5, Code: "GAR"}).Return(page, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), float64(1), payload["count"])
				require.Len(s.T(), payload["resources"], 1)
			},
		},
		{
			name:      "non numeric page",
			path:      "/flights?page=abc",
			sessionID: "sess-1",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid query parameters", payload["error"])
			},
		},
		{
			name:      "invalid filter from service",
			path:      "/flights?size=500",
			sessionID: "sess-1",
			setupMock: func() {
				s.service.EXPECT().ListFlights(mock.Anything, "sess-1", domain.FlightFilter{Size: 500}).
					Return(domain.FlightPage{}, vo.ErrInvalidFilter)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid query parameters", payload["error"])
			},
		},
		{
			name:      "expired session redirects",
			path:      "/flights",
			sessionID: "sess-1",
			setupMock: func() {
				s.service.EXPECT().ListFlights(mock.Anything, "sess-1", domain.FlightFilter{}).
					Return(domain.FlightPage{}, &session.RefreshError{Err: errors.New("refresh rejected"), Expired: true})
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "session expired", payload["error"])
				assert.Equal(s.T(), LoginRedirect, payload["redirect"])
			},
		},
		{
			name: "no session",
			path: "/flights",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), LoginRedirect, payload["redirect"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.sessionID = tc.sessionID
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodGet, tc.path, nil, nil)
			require.NotNil(s.T(), resp)
			tc.assertion(resp, payload)
		})
	}
}

func (s *FlightHandlerSuite) TestCheckCode() {
	s.service.EXPECT().CheckCode(mock.Anything, "sess-1", "GARUDA").
		Return(vo.CodeAvailability{Code: "GARUDA", Available: false}, nil)

	resp, payload, _ := performJSONRequest(s.app, http.MethodGet, "/flights/available?code=GARUDA", nil, nil)
	require.NotNil(s.T(), resp)
	assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), false, payload["available"])
}

func (s *FlightHandlerSuite) TestPhoto() {
	s.service.EXPECT().FlightPhoto(mock.Anything, "sess-1", "f-1").
		Return(domain.Photo{Filename: "f-1.png", ContentType: "image/png", Data: []byte("png-bytes")}, nil)

	resp, _, raw := performJSONRequest(s.app, http.MethodGet, "/flights/f-1/photo", nil, nil)
	require.NotNil(s.T(), resp)
	assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), "image/png", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(s.T(), `inline; filename="f-1.png"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Equal(s.T(), "png-bytes", string(raw))
}

func (s *FlightHandlerSuite) TestCreate_TableDriven() {
	created := vo.FlightSaved{
		Flight:  domain.Flight{ID: "f-9", Code: "GARUDA", Capacity: 180, DepartureDate: "2026-11-01"},
		Created: true,
		Message: "Flight created successfully!",
	}

	tests := []struct {
		name      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "invalid body",
			body: []byte(`{"code":`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid request body", payload["error"])
			},
		},
		{
			name: "field problems",
			body: []byte(`{"code":"G1","capacity":0,"departureDate":"tomorrow"}`),
			setupMock: func() {
				s.service.EXPECT().SaveFlight(mock.Anything, "sess-1", mock.Anything).
					Return(vo.FlightSaved{}, fmt.Errorf("%w: code must be 6 letters", vo.ErrInvalidFlight))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid flight: code must be 6 letters", payload["error"])
			},
		},
		{
			name: "code taken",
			body: []byte(`{"code":"GARUDA","capacity":180,"departureDate":"2026-11-01"}`),
			setupMock: func() {
				s.service.EXPECT().SaveFlight(mock.Anything, "sess-1", mock.Anything).Return(vo.FlightSaved{}, vo.ErrCodeTaken)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
				assert.Equal(s.T(), vo.CodeTakenMessage, payload["error"])
			},
		},
		{
			name: "created",
			body: []byte(`{"code":"GARUDA","capacity":180,"departureDate":"2026-11-01"}`),
			setupMock: func() {
				s.service.EXPECT().SaveFlight(mock.Anything, "sess-1", domain.FlightInput{
					Code:          "GARUDA",
					Capacity:      180,
					DepartureDate: "2026-11-01",
				}).Return(created, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.Equal(s.T(), "Flight created successfully!", payload["message"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/flights", tc.body, nil)
			require.NotNil(s.T(), resp)
			tc.assertion(resp, payload)
		})
	}
}

func (s *FlightHandlerSuite) TestUpdate_MultipartWithPhoto() {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(s.T(), writer.WriteField("code", "LIONAR"))
	require.NoError(s.T(), writer.WriteField("capacity", "150"))
	require.NoError(s.T(), writer.WriteField("departureDate", "2026-12-24"))
	require.NoError(s.T(), writer.WriteField("previousCode", "GARUDA"))

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="plane.jpg"`, PhotoField))
	partHeader.Set(fiber.HeaderContentType, "image/jpeg")
	part, err := writer.CreatePart(partHeader)
	require.NoError(s.T(), err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(s.T(), err)
	require.NoError(s.T(), writer.Close())

	s.service.EXPECT().SaveFlight(mock.Anything, "sess-1", mock.MatchedBy(func(in domain.FlightInput) bool {
		return in.ID == "f-1" &&
			in.Code == "LIONAR" &&
			in.Capacity == 150 &&
			in.DepartureDate == "2026-12-24" &&
			in.PreviousCode == "GARUDA" &&
			in.Photo != nil &&
			in.Photo.Filename == "plane.jpg" &&
			in.Photo.ContentType == "image/jpeg" &&
			string(in.Photo.Data) == "jpeg-bytes"
	})).Return(vo.FlightSaved{Flight: domain.Flight{ID: "f-1", Code: "LIONAR"}, Message: "Flight updated successfully!"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/flights/f-1", &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := s.app.Test(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
	assert.Contains(s.T(), string(raw), "Flight updated successfully!")
}

func TestPhotoFromRequest_TableDriven(t *testing.T) {
	app := fiber.New()
	app.Post("/photo", func(c fiber.Ctx) error {
		photo, err := photoFromRequest(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).SendString(err.Error())
		}
		if photo == nil {
			return c.SendString("none")
		}
		return c.SendString(photo.Filename + " " + photo.ContentType)
	})

	multipartBody := func(withPhoto bool) (string, []byte) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		require.NoError(t, writer.WriteField("code", "GARUDA"))
		if withPhoto {
			partHeader := textproto.MIMEHeader{}
			partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="plane.png"`, PhotoField))
			partHeader.Set(fiber.HeaderContentType, "image/png")
			part, err := writer.CreatePart(partHeader)
			require.NoError(t, err)
			_, err = part.Write([]byte("png-bytes"))
			require.NoError(t, err)
		}
		require.NoError(t, writer.Close())
		return writer.FormDataContentType(), body.Bytes()
	}

	withPhotoType, withPhotoBody := multipartBody(true)
	noPhotoType, noPhotoBody := multipartBody(false)

	tests := []struct {
		name        string
		contentType string
		body        []byte
		expectCode  int
		expectBody  string
	}{
		{name: "json body has no photo", contentType: fiber.MIMEApplicationJSON, body: []byte(`{}`), expectCode: fiber.StatusOK, expectBody: "none"},
		{name: "multipart without photo", contentType: noPhotoType, body: noPhotoBody, expectCode: fiber.StatusOK, expectBody: "none"},
		{name: "multipart with photo", contentType: withPhotoType, body: withPhotoBody, expectCode: fiber.StatusOK, expectBody: "plane.png image/png"},
		{
			name:        "truncated multipart body is rejected",
			contentType: "multipart/form-data; boundary=broken",
			body:        []byte("--broken\r\nContent-Disposition: form-data; name=\"photo\"; filename=\"plane.png\"\r\n\r\npng-by"),
			expectCode:  fiber.StatusBadRequest,
			expectBody:  "invalid multipart body",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/photo", bytes.NewReader(tc.body))
			req.Header.Set(fiber.HeaderContentType, tc.contentType)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			raw, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tc.expectCode, resp.StatusCode)
			assert.Contains(t, string(raw), tc.expectBody)
		})
	}
}

func (s *FlightHandlerSuite) TestUpdate_BrokenMultipartIsRejected() {
	req := httptest.NewRequest(http.MethodPut, "/flights/f-1", bytes.NewReader([]byte("--broken\r\nContent-Disposition: form-data; name=\"code\"\r\n\r\nLION")))
	req.Header.Set(fiber.HeaderContentType, "multipart/form-data; boundary=broken")
	resp, err := s.app.Test(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
	s.service.AssertNotCalled(s.T(), "SaveFlight", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FlightHandlerSuite) TestDelete_TableDriven() {
	tests := []struct {
		name      string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "deleted with reloaded listing",
			setupMock: func() {
				s.service.EXPECT().DeleteFlight(mock.Anything, "sess-1", "f-1").Return(vo.FlightDeleted{
					ID:      "f-1",
					Message: "Flight deleted successfully!",
					Flights: &domain.FlightPage{Count: 0, Resources: []domain.Flight{}},
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "Flight deleted successfully!", payload["message"])
				assert.NotNil(s.T(), payload["flights"])
			},
		},
		{
			name: "upstream not found",
			setupMock: func() {
				s.service.EXPECT().DeleteFlight(mock.Anything, "sess-1", "f-1").
					Return(vo.FlightDeleted{}, fetch.NewStatusError(http.StatusNotFound, []byte(`{"message":"Flight not found"}`)))
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusNotFound, resp.StatusCode)
				assert.Equal(s.T(), "Flight not found", payload["error"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			resp, payload, _ := performJSONRequest(s.app, http.MethodDelete, "/flights/f-1", nil, nil)
			require.NotNil(s.T(), resp)
			tc.assertion(resp, payload)
		})
	}
}

func TestFlightHandlerSuite(t *testing.T) {
	suite.Run(t, new(FlightHandlerSuite))
}

func TestErrorResponder_Respond_TableDriven(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectError  string
	}{
		{name: "invalid filter", err: vo.ErrInvalidFilter, expectStatus: fiber.StatusBadRequest, expectError: "invalid query parameters"},
		{name: "invalid credentials", err: vo.ErrInvalidCredentials, expectStatus: fiber.StatusBadRequest, expectError: "invalid credentials"},
		{name: "code taken", err: vo.ErrCodeTaken, expectStatus: fiber.StatusConflict, expectError: vo.CodeTakenMessage},
		{name: "missing session", err: vo.ErrSessionNotFound, expectStatus: fiber.StatusUnauthorized, expectError: "session expired"},
		{
			name:         "refresh store failure",
			err:          &session.RefreshError{Err: errors.New("redis down")},
			expectStatus: fiber.StatusServiceUnavailable,
			expectError:  "session store unavailable",
		},
		{name: "superseded", err: fetch.ErrSuperseded, expectStatus: fiber.StatusConflict, expectError: "request superseded"},
		{name: "cancelled", err: fetch.ErrCancelled, expectStatus: fiber.StatusRequestTimeout, expectError: "request cancelled"},
		{
			name:         "upstream client error passes through",
			err:          fmt.Errorf("update: %w", fetch.NewStatusError(http.StatusUnprocessableEntity, []byte(`{"error":"capacity too large"}`))),
			expectStatus: fiber.StatusUnprocessableEntity,
			expectError:  "capacity too large",
		},
		{
			name:         "upstream server error is bad gateway",
			err:          fetch.NewStatusError(http.StatusInternalServerError, []byte(`{"message":"database down"}`)),
			expectStatus: fiber.StatusBadGateway,
			expectError:  "database down",
		},
		{
			name:         "network failure is bad gateway",
			err:          &fetch.TransportError{Err: errors.New("connection refused")},
			expectStatus: fiber.StatusBadGateway,
			expectError:  "connection refused",
		},
		{name: "unknown error", err: errors.New("boom"), expectStatus: fiber.StatusInternalServerError, expectError: "internal server error"},
	}

	responder := NewErrorResponder(nil, newTestLogger())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error {
				return responder.Respond(c, "test", tc.err)
			})

			resp, payload, _ := performJSONRequest(app, http.MethodGet, "/", nil, nil)
			require.NotNil(t, resp)
			assert.Equal(t, tc.expectStatus, resp.StatusCode)
			assert.Equal(t, tc.expectError, payload["error"])
		})
	}
}
