// Package jwt issues and verifies the gateway's own session tokens. The
// upstream flights API tokens never leave the gateway; browsers only ever
// hold one of these.
package jwt

import (
	"context"
	"fmt"
	"time"
)

// Strategy defines which signing algorithm family to use.
type Strategy string

const StrategyHMAC Strategy = "hmac"

// Options configures the token manager.
type Options struct {
	Strategy Strategy

	// Secret is the shared HMAC key. Must be at least 32 bytes.
	Secret []byte

	// Algorithm is "HS256" (default), "HS384" or "HS512".
	Algorithm string

	// Issuer sets the default "iss" claim on generated tokens.
	Issuer string

	// Audience sets the default "aud" claim on generated tokens.
	Audience []string

	// TTL determines the "exp" claim. Zero means tokens do not expire.
	TTL time.Duration
}

// Claims is what a gateway session token carries.
type Claims struct {
	// Subject is the gateway session ID the upstream tokens are stored under.
	Subject string

	// Email of the signed in user, for logs.
	Email string

	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	NotBefore time.Time

	// ID is the jti claim.
	ID string
}

// Signer creates signed JWT tokens.
type Signer interface {
	// Sign creates a signed JWT from the given claims. Zero fields fall back
	// to Options (Issuer, Audience, TTL); IssuedAt defaults to now.
	Sign(ctx context.Context, claims Claims) (string, error)
}

// Verifier validates and parses JWT tokens.
type Verifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// TokenManager combines signing and verification capabilities.
// Implementations must be safe for concurrent use.
type TokenManager interface {
	Signer
	Verifier
}

func New(opts Options) (TokenManager, error) {
	switch opts.Strategy {
	case StrategyHMAC:
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}
