// Package session holds the upstream credentials of every gateway session and
// owns the only code path allowed to replace them: the serialized refresh flow.
package session

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNoRefreshToken is returned when a refresh is requested for a session
	// that has no stored refresh token.
	ErrNoRefreshToken = errors.New("session: no refresh token stored")

	// ErrEmptyAccessToken is returned when upstream answers a refresh without
	// an access token.
	ErrEmptyAccessToken = errors.New("session: refresh returned no access token")

	// ErrSessionRequired is returned by stores when the session ID is blank.
	ErrSessionRequired = errors.New("session: session id is required")
)

// Token is the upstream bearer credential pair.
type Token struct {
	AccessToken  string `json:"access_token" db:"access_token"`
	RefreshToken string `json:"refresh_token" db:"refresh_token"`
}

// Valid reports whether the token carries an access token.
func (t *Token) Valid() bool {
	return t != nil && strings.TrimSpace(t.AccessToken) != ""
}

// SameAccess reports whether both tokens carry the same access token.
// A nil token only matches another nil token.
func (t *Token) SameAccess(other *Token) bool {
	if t == nil || other == nil {
		return t == nil && other == nil
	}
	return t.AccessToken == other.AccessToken
}

// Store is the holder of upstream credentials, keyed by gateway session ID.
// Implementations must be safe for concurrent use.
type Store interface {
	// GetToken returns the stored token or nil when the session has none.
	GetToken(ctx context.Context, sessionID string) (*Token, error)

	// SetToken replaces the stored token of the session.
	SetToken(ctx context.Context, sessionID string, token Token) error

	// Clear removes the stored token. Clearing a missing session is not an error.
	Clear(ctx context.Context, sessionID string) error
}

func normalizeID(sessionID string) (string, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return "", ErrSessionRequired
	}
	return id, nil
}
