package jwt

import (
	"context"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var _ TokenManager = (*hmacManager)(nil)

type sessionClaims struct {
	Email string `json:"email,omitempty"`
	jwtlib.RegisteredClaims
}

type hmacManager struct {
	secret   []byte
	method   jwtlib.SigningMethod
	issuer   string
	audience []string
	ttl      time.Duration
	parser   *jwtlib.Parser
}

// NewHMAC creates an HMAC-based TokenManager.
func NewHMAC(opts Options) (TokenManager, error) {
	if len(opts.Secret) == 0 {
		return nil, fmt.Errorf("jwt: HMAC secret must not be empty")
	}
	if len(opts.Secret) < 32 {
		return nil, fmt.Errorf("jwt: HMAC secret must be at least 32 bytes, got %d", len(opts.Secret))
	}

	method, err := resolveHMACMethod(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	parserOpts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{method.Alg()}),
		jwtlib.WithIssuedAt(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwtlib.WithIssuer(opts.Issuer))
	}

	return &hmacManager{
		secret:   opts.Secret,
		method:   method,
		issuer:   opts.Issuer,
		audience: opts.Audience,
		ttl:      opts.TTL,
		parser:   jwtlib.NewParser(parserOpts...),
	}, nil
}

func resolveHMACMethod(alg string) (jwtlib.SigningMethod, error) {
	switch alg {
	case "", "HS256":
		return jwtlib.SigningMethodHS256, nil
	case "HS384":
		return jwtlib.SigningMethodHS384, nil
	case "HS512":
		return jwtlib.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", alg)
	}
}

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	now := time.Now()

	out := sessionClaims{
		Email: claims.Email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:  claims.Subject,
			ID:       claims.ID,
			Issuer:   m.issuer,
			IssuedAt: jwtlib.NewNumericDate(now),
		},
	}

	if claims.Issuer != "" {
		out.Issuer = claims.Issuer
	}
	switch {
	case claims.Audience != nil:
		out.Audience = jwtlib.ClaimStrings(claims.Audience)
	case m.audience != nil:
		out.Audience = jwtlib.ClaimStrings(m.audience)
	}
	if !claims.IssuedAt.IsZero() {
		out.IssuedAt = jwtlib.NewNumericDate(claims.IssuedAt)
	}
	switch {
	case !claims.ExpiresAt.IsZero():
		out.ExpiresAt = jwtlib.NewNumericDate(claims.ExpiresAt)
	case m.ttl > 0:
		out.ExpiresAt = jwtlib.NewNumericDate(now.Add(m.ttl))
	}
	if !claims.NotBefore.IsZero() {
		out.NotBefore = jwtlib.NewNumericDate(claims.NotBefore)
	}

	signed, err := jwtlib.NewWithClaims(m.method, out).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	var parsed sessionClaims
	_, err := m.parser.ParseWithClaims(tokenString, &parsed, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}
	if parsed.Subject == "" {
		return nil, fmt.Errorf("jwt: token has no subject")
	}

	return toClaims(&parsed), nil
}

func toClaims(r *sessionClaims) *Claims {
	c := &Claims{
		Subject:  r.Subject,
		Email:    r.Email,
		Issuer:   r.Issuer,
		Audience: []string(r.Audience),
		ID:       r.ID,
	}
	if r.ExpiresAt != nil {
		c.ExpiresAt = r.ExpiresAt.Time
	}
	if r.IssuedAt != nil {
		c.IssuedAt = r.IssuedAt.Time
	}
	if r.NotBefore != nil {
		c.NotBefore = r.NotBefore.Time
	}
	return c
}
