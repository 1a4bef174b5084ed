package handlers

import (
	"github.com/gofiber/fiber/v2"

	"wecamp/internal/domain"
	applog "wecamp/internal/log"
	"wecamp/internal/repos"
	"wecamp/internal/services"
	"wecamp/internal/validate"
)

// TaxonomyHandler serves the small lookup collections: categories, brands,
// colors. They are tiny, so list endpoints return the whole set unpaged.
type TaxonomyHandler struct {
	Catalog *services.CatalogService
	Cats    *repos.CategoryRepo
	Brands  *repos.BrandRepo
	Colors  *repos.ColorRepo
}

// GET /api/v1/categories
func (h *TaxonomyHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories(c.Context())
	if err != nil {
		return fail(c, "categories.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": cats, "total": len(cats)})
}

// POST /api/v1/categories (admin)
func (h *TaxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	var cat domain.Category
	if err := c.BodyParser(&cat); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Cats.Create(c.Context(), cat)
	if err != nil {
		return fail(c, "categories.create.fail", err)
	}
	applog.Audit(c, "categories.create", map[string]any{"id": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

type categoryPatch struct {
	Name            *string `json:"name"`
	Slug            *string `json:"slug"`
	ParentID        *string `json:"parentId"`
	Order           *int    `json:"order"`
	ExpectedVersion int     `json:"expectedVersion"`
}

// PUT /api/v1/categories/:id (admin)
func (h *TaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var p categoryPatch
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid body")
	}
	updated, err := h.Cats.Update(c.Context(), id, p.ExpectedVersion, func(cat *domain.Category) {
		if p.Name != nil {
			cat.Name = *p.Name
		}
		if p.Slug != nil {
			cat.Slug = *p.Slug
		}
		if p.ParentID != nil {
			cat.ParentID = *p.ParentID
		}
		if p.Order != nil {
			cat.Order = *p.Order
		}
	})
	if err != nil {
		return fail(c, "categories.update.fail", err)
	}
	applog.Audit(c, "categories.update", map[string]any{"id": id})
	return c.JSON(updated)
}

// DELETE /api/v1/categories/:id (admin)
func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Cats.Delete(c.Context(), id); err != nil {
		return fail(c, "categories.delete.fail", err)
	}
	applog.Audit(c, "categories.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/brands
func (h *TaxonomyHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.Catalog.ListBrands(c.Context())
	if err != nil {
		return fail(c, "brands.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": brands, "total": len(brands)})
}

// POST /api/v1/brands (admin)
func (h *TaxonomyHandler) CreateBrand(c *fiber.Ctx) error {
	var b domain.Brand
	if err := c.BodyParser(&b); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Brands.Create(c.Context(), b)
	if err != nil {
		return fail(c, "brands.create.fail", err)
	}
	applog.Audit(c, "brands.create", map[string]any{"id": created.ID, "name": created.Name})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /api/v1/brands/:id (admin)
func (h *TaxonomyHandler) RenameBrand(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var body struct {
		Name            string `json:"name"`
		ExpectedVersion int    `json:"expectedVersion"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	updated, err := h.Brands.Rename(c.Context(), id, body.ExpectedVersion, body.Name)
	if err != nil {
		return fail(c, "brands.rename.fail", err)
	}
	applog.Audit(c, "brands.rename", map[string]any{"id": id, "name": body.Name})
	return c.JSON(updated)
}

// DELETE /api/v1/brands/:id (admin)
func (h *TaxonomyHandler) DeleteBrand(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Brands.Delete(c.Context(), id); err != nil {
		return fail(c, "brands.delete.fail", err)
	}
	applog.Audit(c, "brands.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /api/v1/colors
func (h *TaxonomyHandler) ListColors(c *fiber.Ctx) error {
	colors, err := h.Catalog.ListColors(c.Context())
	if err != nil {
		return fail(c, "colors.list.fail", err)
	}
	return c.JSON(fiber.Map{"data": colors, "total": len(colors)})
}

// POST /api/v1/colors (admin)
func (h *TaxonomyHandler) CreateColor(c *fiber.Ctx) error {
	var col domain.Color
	if err := c.BodyParser(&col); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Colors.Create(c.Context(), col)
	if err != nil {
		return fail(c, "colors.create.fail", err)
	}
	applog.Audit(c, "colors.create", map[string]any{"id": created.ID, "name": created.Name})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /api/v1/colors/:id (admin)
func (h *TaxonomyHandler) UpdateColor(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var body struct {
		Name            *string `json:"name"`
		HexCode         *string `json:"hexCode"`
		ExpectedVersion int     `json:"expectedVersion"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	updated, err := h.Colors.Update(c.Context(), id, body.ExpectedVersion, func(col *domain.Color) {
		if body.Name != nil {
			col.Name = *body.Name
		}
		if body.HexCode != nil {
			col.HexCode = *body.HexCode
		}
	})
	if err != nil {
		return fail(c, "colors.update.fail", err)
	}
	applog.Audit(c, "colors.update", map[string]any{"id": id})
	return c.JSON(updated)
}

// DELETE /api/v1/colors/:id (admin)
func (h *TaxonomyHandler) DeleteColor(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Colors.Delete(c.Context(), id); err != nil {
		return fail(c, "colors.delete.fail", err)
	}
	applog.Audit(c, "colors.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
