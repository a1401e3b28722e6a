package jwt

import "context"

type contextKey struct{}

// SetClaims attaches verified claims to ctx.
func SetClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// GetClaims returns the claims attached by SetClaims.
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok
}

// SessionID returns the subject of the attached claims, or "".
func SessionID(ctx context.Context) string {
	if claims, ok := GetClaims(ctx); ok && claims != nil {
		return claims.Subject
	}
	return ""
}
