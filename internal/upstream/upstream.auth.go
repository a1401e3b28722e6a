package upstream

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/client"

	"github.com/joshuarp/flight-admin/internal/domain"
	"github.com/joshuarp/flight-admin/internal/session"
)

var _ session.Exchanger = (*Client)(nil)

type authResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

func (r authResponse) upstreamAuth() domain.UpstreamAuth {
	return domain.UpstreamAuth{
		Profile: domain.Profile{Name: r.Name, Email: r.Email},
		Token:   session.Token{AccessToken: r.Token, RefreshToken: r.RefreshToken},
	}
}

// Login exchanges credentials for the upstream token pair.
func (c *Client) Login(ctx context.Context, credentials domain.Credentials) (domain.UpstreamAuth, error) {
	var out authResponse
	_, err := send("login", &out, func() (*client.Response, error) {
		return c.request(ctx, nil).
			SetJSON(fiber.Map{"email": strings.TrimSpace(credentials.Email), "password": credentials.Password}).
			Post("/auth/login")
	})
	if err != nil {
		return domain.UpstreamAuth{}, err
	}
	return out.upstreamAuth(), nil
}

// Register creates an account. The flights API logs the new user in right away.
func (c *Client) Register(ctx context.Context, registration domain.Registration) (domain.UpstreamAuth, error) {
	var out authResponse
	_, err := send("register", &out, func() (*client.Response, error) {
		return c.request(ctx, nil).
			SetJSON(fiber.Map{
				"name":     strings.TrimSpace(registration.Name),
				"email":    strings.TrimSpace(registration.Email),
				"password": registration.Password,
			}).
			Post("/auth/register")
	})
	if err != nil {
		return domain.UpstreamAuth{}, err
	}
	return out.upstreamAuth(), nil
}

// Refresh trades the current pair for a new one. The stale access token goes
// in the Authorization header and the refresh token in the body.
func (c *Client) Refresh(ctx context.Context, current session.Token) (session.Token, error) {
	var out authResponse
	_, err := send("refresh", &out, func() (*client.Response, error) {
		return c.request(ctx, &current).
			SetJSON(fiber.Map{"refreshToken": current.RefreshToken}).
			Post("/auth/refresh")
	})
	if err != nil {
		return session.Token{}, err
	}
	return session.Token{AccessToken: out.Token, RefreshToken: out.RefreshToken}, nil
}
