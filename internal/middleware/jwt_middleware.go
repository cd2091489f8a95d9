package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the fiber.Ctx local holding the authenticated user id.
const UserIDKey = "user_id"

// TokenResolver turns a bearer token into the id of the user it was issued for.
type TokenResolver interface {
	ResolveUserID(token string) (string, error)
}

// AuthRequired is a Fiber middleware that rejects requests without a valid bearer token.
// Mutations never reach their handler without an identity, whatever the payload.
func AuthRequired(resolver TokenResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := identify(c, resolver)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthenticated")
		}

		// Store the identity in Fiber context for subsequent handlers
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the identity stored by AuthRequired, or "" when there is none.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(UserIDKey).(string)
	return userID
}

func identify(c *fiber.Ctx, resolver TokenResolver) (string, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && strings.EqualFold(parts[0], "Bearer")) || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}

	userID, err := resolver.ResolveUserID(strings.TrimSpace(parts[1]))
	if err != nil {
		log.Printf("JWT validation failed: %v", err)
		return "", false
	}
	return userID, userID != ""
}
