package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/joshuarp/flight-admin/internal/shared/jwt"
)

const (
	LocalSessionID = "session_id"
	localClaims    = "jwt_claims"
)

// NewHTTPSessionMiddleware verifies the gateway session token and exposes
// its session ID to handlers.
func NewHTTPSessionMiddleware(tokenManager sharedjwt.TokenManager) fiber.Handler {
	return func(c fiber.Ctx) error {
		authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := tokenManager.Verify(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    "invalid token",
				"redirect": "/login",
			})
		}

		c.Locals(LocalSessionID, claims.Subject)
		c.Locals(localClaims, claims)
		c.SetContext(sharedjwt.SetClaims(c.Context(), claims))
		return c.Next()
	}
}

func SessionIDFromContext(c fiber.Ctx) string {
	sessionID, _ := c.Locals(LocalSessionID).(string)
	return strings.TrimSpace(sessionID)
}

func ClaimsFromContext(c fiber.Ctx) (*sharedjwt.Claims, bool) {
	claims, ok := c.Locals(localClaims).(*sharedjwt.Claims)
	return claims, ok && claims != nil
}
