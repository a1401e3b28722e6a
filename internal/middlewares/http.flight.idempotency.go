package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedidempotency "github.com/joshuarp/flight-admin/internal/shared/idempotency"
)

const IdempotencyKeyHeader = "X-Idempotency-Key"

type IdempotencyConfig struct {
	Store sharedidempotency.Store

	// Scope prefixes the per-session scope, e.g. "flights".
	Scope string

	// Required rejects writes without an idempotency key.
	Required bool

	Logger *slog.Logger
}

// NewHTTPIdempotencyMiddleware replays the stored response of a write that
// was already answered under the same key. Server-side failures release the
// key so the client can retry.
func NewHTTPIdempotencyMiddleware(cfg IdempotencyConfig) fiber.Handler {
	if cfg.Scope == "" {
		cfg.Scope = "flights"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		if SkipSafeMethods(c) {
			return c.Next()
		}
		if cfg.Store == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "idempotency store is not available"})
		}

		sessionID := SessionIDFromContext(c)
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing session"})
		}

		idempotencyKey := strings.TrimSpace(c.Get(IdempotencyKeyHeader))
		if idempotencyKey == "" {
			if cfg.Required {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing idempotency key"})
			}
			return c.Next()
		}

		request := sharedidempotency.Request{
			Scope:       cfg.Scope + ":" + sessionID,
			Key:         idempotencyKey,
			RequestHash: requestHash(c.Method(), c.Path(), sessionID, c.BodyRaw()),
		}

		decision, err := cfg.Store.Acquire(c.Context(), request)
		if err != nil {
			cfg.Logger.Error("failed to acquire idempotency key", "session_id", sessionID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to acquire idempotency key"})
		}

		switch decision.Type {
		case sharedidempotency.DecisionReplay:
			response := decision.Response
			if response.ContentType != "" {
				c.Set(fiber.HeaderContentType, response.ContentType)
			}
			if response.StatusCode <= 0 {
				response.StatusCode = fiber.StatusOK
			}
			c.Set("Idempotent-Replayed", "true")
			return c.Status(response.StatusCode).Send(response.Body)
		case sharedidempotency.DecisionInProgress:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request is already in progress"})
		case sharedidempotency.DecisionConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "idempotency key reused with different payload"})
		case sharedidempotency.DecisionAcquired:
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "invalid idempotency state"})
		}

		handlerErr := c.Next()
		statusCode := c.Response().StatusCode()

		if handlerErr != nil || statusCode >= fiber.StatusInternalServerError {
			if err := cfg.Store.Release(c.Context(), request); err != nil {
				cfg.Logger.Warn("failed to release idempotency key", "session_id", sessionID, "error", err)
			}
			return handlerErr
		}

		response := sharedidempotency.StoredResponse{
			StatusCode:  statusCode,
			Body:        append([]byte(nil), c.Response().Body()...),
			ContentType: string(c.Response().Header.ContentType()),
		}
		if err := cfg.Store.Complete(c.Context(), request, response); err != nil {
			cfg.Logger.Error("failed to persist idempotency response", "session_id", sessionID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to persist idempotency response"})
		}
		return nil
	}
}

func requestHash(method, path, sessionID string, body []byte) string {
	hasher := sha256.New()
	for _, part := range []string{strings.ToUpper(strings.TrimSpace(method)), strings.TrimSpace(path), strings.TrimSpace(sessionID)} {
		hasher.Write([]byte(part))
		hasher.Write([]byte("\n"))
	}
	hasher.Write(body)
	return hex.EncodeToString(hasher.Sum(nil))
}
