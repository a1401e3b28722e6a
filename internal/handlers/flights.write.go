package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/middlewares"
)

// PhotoField is the multipart field carrying a flight photo.
const PhotoField = "photo"

// FlightWriteHandler serves create, update and delete. Bodies are JSON, or
// multipart when a photo is attached.
type FlightWriteHandler struct {
	service FlightService
	errors  *ErrorResponder
}

type flightRequest struct {
	Code          string `json:"code" form:"code"`
	Capacity      int    `json:"capacity" form:"capacity"`
	DepartureDate string `json:"departureDate" form:"departureDate"`

	// PreviousCode is the code the client loaded the flight with.
	PreviousCode string `json:"previousCode" form:"previousCode"`
}

func NewFlightWriteHandler(service FlightService, errors *ErrorResponder) *FlightWriteHandler {
	return &FlightWriteHandler{service: service, errors: errors}
}

// Register mounts the write routes. middlewares run for /flights only, after
// the ones already on router.
func (h *FlightWriteHandler) Register(router fiber.Router, middlewares ...any) {
	flights := router.Group("/flights", middlewares...)
	flights.Post("", h.Create)
	flights.Put("/:id", h.Update)
	flights.Delete("/:id", h.Delete)
}

func (h *FlightWriteHandler) Create(c fiber.Ctx) error {
	return h.save(c, "")
}

func (h *FlightWriteHandler) Update(c fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "flight id is required"})
	}
	return h.save(c, id)
}

func (h *FlightWriteHandler) Delete(c fiber.Ctx) error {
	sessionID := middlewares.SessionIDFromContext(c)
	if sessionID == "" {
		return SessionExpired(c)
	}

	result, err := h.service.DeleteFlight(c.Context(), sessionID, c.Params("id"))
	if err != nil {
		return h.errors.Respond(c, "delete_flight", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *FlightWriteHandler) save(c fiber.Ctx, id string) error {
	sessionID := middlewares.SessionIDFromContext(c)
	if sessionID == "" {
		return SessionExpired(c)
	}

	var requestBody flightRequest
	if err := c.Bind().Body(&requestBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	photo, err := photoFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	input := domain.FlightInput{
		ID:            id,
		Code:          requestBody.Code,
		Capacity:      requestBody.Capacity,
		DepartureDate: requestBody.DepartureDate,
		Photo:         photo,
		PreviousCode:  requestBody.PreviousCode,
	}

	operation := "create_flight"
	if input.IsUpdate() {
		operation = "update_flight"
	}

	result, err := h.service.SaveFlight(c.Context(), sessionID, input)
	if err != nil {
		return h.errors.Respond(c, operation, err)
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(result)
}

// photoFromRequest returns the attached photo, or nil for JSON bodies and
// multipart bodies without one.
func photoFromRequest(c fiber.Ctx) (*domain.Photo, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart body: %w", err)
	}
	files := form.File[PhotoField]
	if len(files) == 0 {
		return nil, nil
	}
	return readPhoto(files[0])
}

func readPhoto(header *multipart.FileHeader) (*domain.Photo, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open photo: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo: %w", err)
	}

	contentType := header.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	return &domain.Photo{Filename: header.Filename, ContentType: contentType, Data: data}, nil
}
