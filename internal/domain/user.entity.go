package domain

import "github.com/joshuarp/flight-admin/internal/session"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpstreamAuth is what the flights API hands out on login or registration.
type UpstreamAuth struct {
	Profile
	Token session.Token
}
