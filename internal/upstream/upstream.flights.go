package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/session"
)

const codeAvailableStatus = "available"

func flightPath(id string, suffix string) string {
	return "/flights/" + url.PathEscape(id) + suffix
}

func (c *Client) ListFlights(ctx context.Context, token *session.Token, filter domain.FlightFilter) (domain.FlightPage, error) {
	var page domain.FlightPage
	_, err := send("list flights", &page, func() (*client.Response, error) {
		req := c.request(ctx, token)
		for key, values := range filter.Query() {
			req.SetParam(key, values[0])
		}
		return req.Get("/flights")
	})
	if err != nil {
		return domain.FlightPage{}, err
	}
	if page.Resources == nil {
		page.Resources = []domain.Flight{}
	}
	return page, nil
}

// CodeAvailable asks whether no flight uses code yet.
func (c *Client) CodeAvailable(ctx context.Context, token *session.Token, code string) (bool, error) {
	var out struct {
		Status string `json:"status"`
	}
	_, err := send("check code", &out, func() (*client.Response, error) {
		return c.request(ctx, token).SetParam("code", code).Get("/flights/available")
	})
	if err != nil {
		return false, err
	}
	return out.Status == codeAvailableStatus, nil
}

// CreateFlight posts JSON, or multipart to /flights/withPhoto when a photo is attached.
func (c *Client) CreateFlight(ctx context.Context, token *session.Token, input domain.FlightInput) (domain.Flight, error) {
	var flight domain.Flight
	_, err := send("create flight", &flight, func() (*client.Response, error) {
		req := c.request(ctx, token)
		if input.Photo != nil {
			if err := withPhoto(req, input); err != nil {
				return nil, err
			}
			return req.Post("/flights/withPhoto")
		}
		return req.SetJSON(flightBody(input)).Post("/flights")
	})
	if err != nil {
		return domain.Flight{}, err
	}
	return flight, nil
}

// UpdateFlight puts JSON, or multipart to /flights/{id}/withPhoto when a photo is attached.
func (c *Client) UpdateFlight(ctx context.Context, token *session.Token, input domain.FlightInput) (domain.Flight, error) {
	var flight domain.Flight
	_, err := send("update flight", &flight, func() (*client.Response, error) {
		req := c.request(ctx, token)
		if input.Photo != nil {
			if err := withPhoto(req, input); err != nil {
				return nil, err
			}
			return req.Put(flightPath(input.ID, "/withPhoto"))
		}
		return req.SetJSON(flightBody(input)).Put(flightPath(input.ID, ""))
	})
	if err != nil {
		return domain.Flight{}, err
	}
	if flight.ID == "" {
		flight.ID = input.ID
	}
	return flight, nil
}

func (c *Client) DeleteFlight(ctx context.Context, token *session.Token, id string) error {
	_, err := send("delete flight", nil, func() (*client.Response, error) {
		return c.request(ctx, token).Delete(flightPath(id, ""))
	})
	return err
}

// FlightPhoto downloads the flight image as is.
func (c *Client) FlightPhoto(ctx context.Context, token *session.Token, id string) (domain.Photo, error) {
	r, err := send("flight photo", nil, func() (*client.Response, error) {
		return c.request(ctx, token).SetHeader(fiber.HeaderAccept, "image/*").Get(flightPath(id, "/photo"))
	})
	if err != nil {
		return domain.Photo{}, err
	}

	contentType := r.contentType
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}
	return domain.Photo{Filename: id, ContentType: contentType, Data: r.body}, nil
}

func flightBody(input domain.FlightInput) fiber.Map {
	return fiber.Map{
		"code":          input.Code,
		"capacity":      input.Capacity,
		"departureDate": input.DepartureDate,
	}
}

// withPhoto sets a multipart body carrying the flight fields and the photo
// with its own content type.
func withPhoto(req *client.Request, input domain.FlightInput) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := [][2]string{
		{"code", input.Code},
		{"capacity", strconv.Itoa(input.Capacity)},
		{"departureDate", input.DepartureDate},
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return fmt.Errorf("failed to write %s field: %w", field[0], err)
		}
	}

	filename := input.Photo.Filename
	if filename == "" {
		filename = "photo"
	}
	contentType := input.Photo.ContentType
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}

	partHeader := textproto.MIMEHeader{}
	partHeader.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`form-data; name="photo"; filename=%q`, filename))
	partHeader.Set(fiber.HeaderContentType, contentType)
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return fmt.Errorf("failed to create photo part: %w", err)
	}
	if _, err := part.Write(input.Photo.Data); err != nil {
		return fmt.Errorf("failed to write photo: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	req.SetHeader(fiber.HeaderContentType, writer.FormDataContentType())
	req.SetRawBody(body.Bytes())
	return nil
}
