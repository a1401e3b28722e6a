package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/domain/vo"
	"github.com/joshuarp/flight-admin/internal/middlewares"
)

type FlightService interface {
	ListFlights(ctx context.Context, sessionID string, filter domain.FlightFilter) (domain.FlightPage, error)
	CheckCode(ctx context.Context, sessionID, code string) (vo.CodeAvailability, error)
	SaveFlight(ctx context.Context, sessionID string, input domain.FlightInput) (vo.FlightSaved, error)
	DeleteFlight(ctx context.Context, sessionID, id string) (vo.FlightDeleted, error)
	FlightPhoto(ctx context.Context, sessionID, id string) (domain.Photo, error)
}

// FlightReadHandler serves the flight routes that do not change anything.
type FlightReadHandler struct {
	service FlightService
	errors  *ErrorResponder
}

type listFlightsQuery struct {
	Page int    `query:"page"`
	Size int    `query:"size"`
	Code string `query:"code"`
}

func NewFlightReadHandler(service FlightService, errors *ErrorResponder) *FlightReadHandler {
	return &FlightReadHandler{service: service, errors: errors}
}

func (h *FlightReadHandler) Register(router fiber.Router) {
	router.Get("/flights", h.List)
	router.Get("/flights/available", h.CheckCode)
	router.Get("/flights/:id/photo", h.Photo)
}

func (h *FlightReadHandler) List(c fiber.Ctx) error {
	sessionID := middlewares.SessionIDFromContext(c)
	if sessionID == "" {
		return SessionExpired(c)
	}

	var query listFlightsQuery
	if err := c.Bind().Query(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": vo.ErrInvalidFilter.Error()})
	}

	page, err := h.service.ListFlights(c.Context(), sessionID, domain.FlightFilter(query))
	if err != nil {
		return h.errors.Respond(c, "list_flights", err)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

func (h *FlightReadHandler) CheckCode(c fiber.Ctx) error {
	sessionID := middlewares.SessionIDFromContext(c)
	if sessionID == "" {
		return SessionExpired(c)
	}

	result, err := h.service.CheckCode(c.Context(), sessionID, c.Query("code"))
	if err != nil {
		return h.errors.Respond(c, "check_code", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *FlightReadHandler) Photo(c fiber.Ctx) error {
	sessionID := middlewares.SessionIDFromContext(c)
	if sessionID == "" {
		return SessionExpired(c)
	}

	photo, err := h.service.FlightPhoto(c.Context(), sessionID, c.Params("id"))
	if err != nil {
		return h.errors.Respond(c, "flight_photo", err)
	}

	c.Set(fiber.HeaderContentType, photo.ContentType)
	if photo.Filename != "" {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", photo.Filename))
	}
	return c.Status(fiber.StatusOK).Send(photo.Data)
}
