package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/domain/vo"
	"github.com/joshuarp/flight-admin/internal/middlewares"
)

type AuthSessionService interface {
	Login(ctx context.Context, credentials domain.Credentials) (vo.AuthSession, error)
	Register(ctx context.Context, registration domain.Registration) (vo.AuthSession, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthSessionHandler struct {
	service AuthSessionService
	errors  *ErrorResponder
}

func NewAuthSessionHandler(service AuthSessionService, errors *ErrorResponder) *AuthSessionHandler {
	return &AuthSessionHandler{service: service, errors: errors}
}

// Register mounts login and sign up on the public router.
func (h *AuthSessionHandler) Register(router fiber.Router) {
	router.Post("/auth/login", h.Login)
	router.Post("/auth/register", h.SignUp)
}

// RegisterProtected mounts the routes that need a session.
func (h *AuthSessionHandler) RegisterProtected(router fiber.Router) {
	router.Post("/auth/logout", h.Logout)
}

func (h *AuthSessionHandler) Login(c fiber.Ctx) error {
	var requestBody domain.Credentials
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if strings.TrimSpace(requestBody.Email) == "" || strings.TrimSpace(requestBody.Password) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	result, err := h.service.Login(c.Context(), requestBody)
	if err != nil {
		return h.errors.Respond(c, "login", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuthSessionHandler) SignUp(c fiber.Ctx) error {
	var requestBody domain.Registration
	if err := c.Bind().JSON(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if strings.TrimSpace(requestBody.Name) == "" ||
		strings.TrimSpace(requestBody.Email) == "" ||
		strings.TrimSpace(requestBody.Password) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, email and password are required",
		})
	}

	result, err := h.service.Register(c.Context(), requestBody)
	if err != nil {
		return h.errors.Respond(c, "register", err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *AuthSessionHandler) Logout(c fiber.Ctx) error {
	sessionID := middlewares.SessionIDFromContext(c)
	if sessionID == "" {
		return SessionExpired(c)
	}

	if err := h.service.Logout(c.Context(), sessionID); err != nil {
		return h.errors.Respond(c, "logout", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
