package handlers

import (
	"github.com/gofiber/fiber/v2"

	"wecamp/internal/auth"
	applog "wecamp/internal/log"
	"wecamp/internal/services"
)

// OptionalAuth attaches the caller's identity when a valid bearer token is
// present. It never rejects; public routes use it to widen visibility for
// logged-in admins (draft posts, unapproved reviews).
func OptionalAuth(authSvc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tok := auth.BearerToken(c.Get(fiber.HeaderAuthorization)); tok != "" {
			if claims, err := authSvc.Verify(tok); err == nil && claims.Role == "ADMIN" {
				c.Locals("userID", claims.Subject)
			}
		}
		return c.Next()
	}
}

// RequireAdmin gates a route behind a valid bearer token with the ADMIN role.
func RequireAdmin(authSvc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}
		claims, err := authSvc.Verify(tok)
		if err != nil {
			applog.Security(c, "auth.token.invalid", map[string]any{"err": err.Error()})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}
		if claims.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", map[string]any{"sub": claims.Subject})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		c.Locals("userID", claims.Subject)
		return c.Next()
	}
}
