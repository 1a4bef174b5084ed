package handlers

import (
	"github.com/gofiber/fiber/v2"

	"wecamp/internal/domain"
	applog "wecamp/internal/log"
	"wecamp/internal/repos"
	"wecamp/internal/validate"
)

// ReferenceHandler serves the curated manufacturer gallery.
type ReferenceHandler struct {
	Brands *repos.ReferenceBrandRepo
	Images *repos.ReferenceImageRepo
}

// GET /api/v1/reference/brands
func (h *ReferenceHandler) ListBrands(c *fiber.Ctx) error {
	list, err := h.Brands.All(c.Context())
	if err != nil {
		return fail(c, "reference.brands.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// POST /api/v1/reference/brands (admin)
func (h *ReferenceHandler) CreateBrand(c *fiber.Ctx) error {
	var b domain.ReferenceBrand
	if err := c.BodyParser(&b); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Brands.Create(c.Context(), b)
	if err != nil {
		return fail(c, "reference.brands.create.fail", err)
	}
	applog.Audit(c, "reference.brands.create", map[string]any{"id": created.ID, "name": created.Name})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// DELETE /api/v1/reference/brands/:id (admin)
func (h *ReferenceHandler) DeleteBrand(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Brands.Delete(c.Context(), id); err != nil {
		return fail(c, "reference.brands.delete.fail", err)
	}
	applog.Audit(c, "reference.brands.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/reference/images?brandId=...
func (h *ReferenceHandler) ListImages(c *fiber.Ctx) error {
	brandID := c.Query("brandId")
	var (
		list []domain.ReferenceImage
		err  error
	)
	if brandID != "" {
		list, err = h.Images.ForBrand(c.Context(), brandID)
	} else {
		list, err = h.Images.All(c.Context())
	}
	if err != nil {
		return fail(c, "reference.images.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": list, "total": len(list)})
}

// POST /api/v1/reference/images (admin)
func (h *ReferenceHandler) CreateImage(c *fiber.Ctx) error {
	var img domain.ReferenceImage
	if err := c.BodyParser(&img); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Images.Create(c.Context(), img)
	if err != nil {
		return fail(c, "reference.images.create.fail", err)
	}
	applog.Audit(c, "reference.images.create", map[string]any{"id": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// DELETE /api/v1/reference/images/:id (admin)
func (h *ReferenceHandler) DeleteImage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Images.Delete(c.Context(), id); err != nil {
		return fail(c, "reference.images.delete.fail", err)
	}
	applog.Audit(c, "reference.images.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
