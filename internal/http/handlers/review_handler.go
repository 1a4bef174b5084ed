package handlers

import (
	"github.com/gofiber/fiber/v2"

	"wecamp/internal/domain"
	applog "wecamp/internal/log"
	"wecamp/internal/services"
	"wecamp/internal/validate"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

// GET /api/v1/reviews?gearId=...|campsiteId=...
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	gearID := c.Query("gearId")
	campsiteID := c.Query("campsiteId")
	if gearID == "" && campsiteID == "" {
		return badRequest(c, "gearId or campsiteId required")
	}
	includeUnapproved := c.Locals("userID") != nil
	list, err := h.Reviews.ListForTarget(c.Context(), gearID, campsiteID, includeUnapproved)
	if err != nil {
		return fail(c, "reviews.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// POST /api/v1/reviews
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var rv domain.Review
	if err := c.BodyParser(&rv); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Reviews.Submit(c.Context(), rv)
	if err != nil {
		return fail(c, "reviews.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// POST /api/v1/reviews/:id/helpful
func (h *ReviewHandler) MarkHelpful(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	rv, err := h.Reviews.MarkHelpful(c.Context(), id)
	if err != nil {
		return fail(c, "reviews.helpful.fail", err)
	}
	return c.JSON(rv)
}

// POST /api/v1/reviews/:id/approve (admin)
func (h *ReviewHandler) Approve(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	rv, err := h.Reviews.Approve(c.Context(), id)
	if err != nil {
		return fail(c, "reviews.approve.fail", err)
	}
	applog.Audit(c, "reviews.approve", map[string]any{"id": id})
	return c.JSON(rv)
}

// DELETE /api/v1/reviews/:id (admin)
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Reviews.Delete(c.Context(), id); err != nil {
		return fail(c, "reviews.delete.fail", err)
	}
	applog.Audit(c, "reviews.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
