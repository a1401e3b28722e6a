// Package upstream is the transport to the flights admin API.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"

	"github.com/joshuarp/flight-admin/internal/fetch"
	"github.com/joshuarp/flight-admin/internal/session"
)

type Options struct {
	BaseURL string

	// Timeout bounds a single upstream call. Zero leaves calls bounded only by
	// their context.
	Timeout time.Duration
}

type Client struct {
	http *client.Client
}

func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("upstream: base url is required")
	}

	httpClient := client.New().SetBaseURL(baseURL)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	return &Client{http: httpClient}, nil
}

func (c *Client) request(ctx context.Context, token *session.Token) *client.Request {
	req := c.http.R().SetContext(ctx)
	req.SetHeader(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if token.Valid() {
		req.SetHeader(fiber.HeaderAuthorization, "Bearer "+token.AccessToken)
	}
	return req
}

type reply struct {
	status      int
	body        []byte
	contentType string
}

// send runs the request and turns anything but a 2xx into a
// *fetch.TransportError. out, when set, receives the decoded JSON body.
func send(op string, out any, do func() (*client.Response, error)) (reply, error) {
	resp, err := do()
	if err != nil {
		return reply{}, &fetch.TransportError{Err: fmt.Errorf("upstream: %s: %w", op, err)}
	}
	defer resp.Close()

	r := reply{
		status:      resp.StatusCode(),
		body:        append([]byte(nil), resp.Body()...),
		contentType: resp.Header(fiber.HeaderContentType),
	}

	if r.status < fiber.StatusOK || r.status >= fiber.StatusMultipleChoices {
		return r, fmt.Errorf("upstream: %s: %w", op, fetch.NewStatusError(r.status, r.body))
	}

	if out != nil && len(r.body) > 0 {
		if err := resp.JSON(out); err != nil {
			return r, fmt.Errorf("upstream: %s: failed to decode response: %w", op, err)
		}
	}

	return r, nil
}
