package vo

import "time"

type AuthSession struct {
	SessionToken string    `json:"session_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at,omitzero"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
}
