package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/flight-admin/internal/domain/vo"
	"github.com/joshuarp/flight-admin/internal/fetch"
	"github.com/joshuarp/flight-admin/internal/session"
)

// LoginRedirect is where clients send users whose session has expired.
const LoginRedirect = "/login"

// ErrorResponder turns service errors into HTTP responses.
type ErrorResponder struct {
	messages *fetch.MessageExtractor
	logger   *slog.Logger
}

func NewErrorResponder(messages *fetch.MessageExtractor, logger *slog.Logger) *ErrorResponder {
	if logger == nil {
		logger = slog.Default()
	}
	if messages == nil {
		messages, _ = fetch.NewMessageExtractor("")
	}
	return &ErrorResponder{messages: messages, logger: logger}
}

// SessionExpired is the response every protected route gives once the
// upstream credentials of the session are gone.
func SessionExpired(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":    "session expired",
		"redirect": LoginRedirect,
	})
}

func (r *ErrorResponder) Respond(c fiber.Ctx, operation string, err error) error {
	switch {
	case errors.Is(err, vo.ErrInvalidFilter):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vo.ErrInvalidFilter.Error()})
	case errors.Is(err, vo.ErrInvalidFlight), errors.Is(err, vo.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, vo.ErrCodeTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": vo.CodeTakenMessage})
	case errors.Is(err, vo.ErrSessionExpired), errors.Is(err, vo.ErrSessionNotFound), session.IsExpired(err):
		return SessionExpired(c)
	case errors.Is(err, fetch.ErrSuperseded):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request superseded"})
	case errors.Is(err, fetch.ErrCancelled):
		return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{"error": "request cancelled"})
	case session.IsRefreshFailure(err):
		r.logger.Error("session store failure", "operation", operation, "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "session store unavailable"})
	}

	var transportErr *fetch.TransportError
	if errors.As(err, &transportErr) {
		message := r.messages.Message(err)
		status := transportErr.StatusCode
		if status >= fiber.StatusBadRequest && status < fiber.StatusInternalServerError {
			return c.Status(status).JSON(fiber.Map{"error": message})
		}

		r.logger.Warn("upstream failure", "operation", operation, "status_code", status, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": message})
	}

	r.logger.Error("request failed", "operation", operation, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
