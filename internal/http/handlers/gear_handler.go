package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"wecamp/internal/domain"
	applog "wecamp/internal/log"
	"wecamp/internal/query"
	"wecamp/internal/repos"
	"wecamp/internal/services"
	"wecamp/internal/validate"
)

type GearHandler struct {
	Catalog *services.CatalogService
	Repo    *repos.GearRepo
}

// GET /api/v1/gear
func (h *GearHandler) List(c *fiber.Ctx) error {
	var f query.Filters

	if raw := c.Query("q"); strings.TrimSpace(raw) != "" {
		q, ok := validate.Q(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q"})
			return badRequest(c, "enter a valid keyword (letters/numbers only)")
		}
		f.Search = q
	}

	var ok bool
	if f.MinPrice, ok = validate.Price(c.Query("minPrice")); !ok {
		return badRequest(c, "invalid minPrice")
	}
	if f.MaxPrice, ok = validate.Price(c.Query("maxPrice")); !ok {
		return badRequest(c, "invalid maxPrice")
	}
	if f.MinRating, ok = validate.Rating(c.Query("minRating")); !ok {
		return badRequest(c, "invalid minRating")
	}
	if raw := c.Query("available"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "invalid available")
		}
		f.Available = &b
	}
	f.Status = strings.TrimSpace(c.Query("status"))
	f.Category = strings.TrimSpace(c.Query("category"))
	f.Brand = strings.TrimSpace(c.Query("brand"))
	f.Color = strings.TrimSpace(c.Query("color"))

	page := validate.Page(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	sortBy := query.Sort(c.Query("sort"))

	res, err := h.Catalog.ListGear(c.Context(), f, sortBy, page, limit)
	if err != nil {
		return fail(c, "gear.list.fail", err)
	}
	return c.JSON(res)
}

// GET /api/v1/gear/:id
func (h *GearHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	g, err := h.Repo.ByID(c.Context(), id)
	if err != nil {
		return fail(c, "gear.get.fail", err)
	}
	return c.JSON(g)
}

// POST /api/v1/gear (admin)
func (h *GearHandler) Create(c *fiber.Ctx) error {
	var g domain.Gear
	if err := c.BodyParser(&g); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Repo.Create(c.Context(), g)
	if err != nil {
		return fail(c, "gear.create.fail", err)
	}
	applog.Audit(c, "gear.create", map[string]any{"id": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// gearPatch carries the optional fields of a partial update, plus the
// version the caller last saw (0 skips the stale-write check).
type gearPatch struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	Category        *string   `json:"category"`
	CategoryID      *string   `json:"categoryId"`
	PricePerDay     *float64  `json:"pricePerDay"`
	Deposit         *float64  `json:"deposit"`
	Available       *bool     `json:"available"`
	Status          *string   `json:"status"`
	Brand           *string   `json:"brand"`
	Color           *string   `json:"color"`
	Rating          *float64  `json:"rating"`
	Images          *[]string `json:"images"`
	ExpectedVersion int       `json:"expectedVersion"`
}

func (p *gearPatch) apply(g *domain.Gear) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.CategoryID != nil {
		g.CategoryID = *p.CategoryID
	}
	if p.PricePerDay != nil {
		g.PricePerDay = *p.PricePerDay
	}
	if p.Deposit != nil {
		g.Deposit = *p.Deposit
	}
	if p.Available != nil {
		g.Available = *p.Available
	}
	if p.Status != nil {
		g.Status = *p.Status
	}
	if p.Brand != nil {
		g.Brand = *p.Brand
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
	if p.Rating != nil {
		g.Rating = *p.Rating
	}
	if p.Images != nil {
		g.Images = *p.Images
	}
}

// PUT /api/v1/gear/:id (admin)
func (h *GearHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var p gearPatch
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid body")
	}
	updated, err := h.Repo.Update(c.Context(), id, p.ExpectedVersion, p.apply)
	if err != nil {
		return fail(c, "gear.update.fail", err)
	}
	applog.Audit(c, "gear.update", map[string]any{"id": id})
	return c.JSON(updated)
}

// DELETE /api/v1/gear/:id (admin)
func (h *GearHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return fail(c, "gear.delete.fail", err)
	}
	applog.Audit(c, "gear.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
