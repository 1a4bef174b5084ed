package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "wecamp/internal/log"
	"wecamp/internal/services"
	"wecamp/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	email, ok := validate.Email(body.Email)
	if !ok || body.Password == "" {
		applog.Security(c, "login.malformed", map[string]any{})
		return badRequest(c, "email and password required")
	}

	token, user, err := h.Auth.Login(c.Context(), email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCreds) {
			applog.Security(c, "login.fail", map[string]any{"email": email})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}
		return fail(c, "login.fail", err)
	}

	user.Hash = ""
	applog.Audit(c, "login.ok", map[string]any{"userId": user.ID})
	return c.JSON(fiber.Map{"token": token, "user": user})
}
