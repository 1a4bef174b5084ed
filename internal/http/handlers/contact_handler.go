package handlers

import (
	"github.com/gofiber/fiber/v2"

	"wecamp/internal/domain"
	applog "wecamp/internal/log"
	"wecamp/internal/services"
	"wecamp/internal/validate"
)

type ContactHandler struct {
	Contact *services.ContactService
}

// POST /api/v1/messages
func (h *ContactHandler) SubmitMessage(c *fiber.Ctx) error {
	var m domain.Message
	if err := c.BodyParser(&m); err != nil {
		return badRequest(c, "invalid body")
	}
	if _, ok := validate.Email(m.Email); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return badRequest(c, "invalid email")
	}
	created, err := h.Contact.SubmitMessage(c.Context(), m)
	if err != nil {
		return fail(c, "messages.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /api/v1/messages (admin)
func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	list, err := h.Contact.Messages.All(c.Context())
	if err != nil {
		return fail(c, "messages.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// POST /api/v1/messages/:id/status (admin)
func (h *ContactHandler) MarkMessage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	m, err := h.Contact.MarkMessage(c.Context(), id, body.Status)
	if err != nil {
		return fail(c, "messages.mark.fail", err)
	}
	return c.JSON(m)
}

// DELETE /api/v1/messages/:id (admin)
func (h *ContactHandler) DeleteMessage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Contact.Messages.Delete(c.Context(), id); err != nil {
		return fail(c, "messages.delete.fail", err)
	}
	applog.Audit(c, "messages.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// POST /api/v1/appointments
func (h *ContactHandler) BookAppointment(c *fiber.Ctx) error {
	var a domain.Appointment
	if err := c.BodyParser(&a); err != nil {
		return badRequest(c, "invalid body")
	}
	if _, ok := validate.Email(a.Email); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return badRequest(c, "invalid email")
	}
	created, err := h.Contact.BookAppointment(c.Context(), a)
	if err != nil {
		return fail(c, "appointments.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GET /api/v1/appointments (admin)
func (h *ContactHandler) ListAppointments(c *fiber.Ctx) error {
	list, err := h.Contact.Appointments.All(c.Context())
	if err != nil {
		return fail(c, "appointments.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// POST /api/v1/appointments/:id/status (admin)
func (h *ContactHandler) MoveAppointment(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	a, err := h.Contact.MoveAppointment(c.Context(), id, body.Status)
	if err != nil {
		return fail(c, "appointments.move.fail", err)
	}
	applog.Audit(c, "appointments.move", map[string]any{"id": id, "status": body.Status})
	return c.JSON(a)
}

// POST /api/v1/newsletter
func (h *ContactHandler) Subscribe(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	email, ok := validate.Email(body.Email)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return badRequest(c, "invalid email")
	}
	sub, err := h.Contact.Subscribe(c.Context(), email)
	if err != nil {
		return fail(c, "newsletter.subscribe.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// GET /api/v1/newsletter (admin)
func (h *ContactHandler) ListSubscriptions(c *fiber.Ctx) error {
	list, err := h.Contact.Newsletter.All(c.Context())
	if err != nil {
		return fail(c, "newsletter.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// DELETE /api/v1/newsletter/:email
func (h *ContactHandler) Unsubscribe(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Params("email"))
	if !ok {
		return badRequest(c, "invalid email")
	}
	if err := h.Contact.Unsubscribe(c.Context(), email); err != nil {
		return fail(c, "newsletter.unsubscribe.fail", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
