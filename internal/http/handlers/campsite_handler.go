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

type CampsiteHandler struct {
	Catalog *services.CatalogService
	Repo    *repos.CampsiteRepo
}

// GET /api/v1/campsites
func (h *CampsiteHandler) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("q"))
	minCapacity, _ := strconv.Atoi(c.Query("minCapacity"))
	maxPrice, ok := validate.Price(c.Query("maxPrice"))
	if !ok {
		return badRequest(c, "invalid maxPrice")
	}
	page := validate.Page(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	sortBy := query.Sort(c.Query("sort"))

	res, err := h.Catalog.ListCampsites(c.Context(), search, minCapacity, maxPrice, sortBy, page, limit)
	if err != nil {
		return fail(c, "campsites.list.fail", err)
	}
	return c.JSON(res)
}

// GET /api/v1/campsites/:id
func (h *CampsiteHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	cs, err := h.Repo.ByID(c.Context(), id)
	if err != nil {
		return fail(c, "campsites.get.fail", err)
	}
	return c.JSON(cs)
}

// POST /api/v1/campsites (admin)
func (h *CampsiteHandler) Create(c *fiber.Ctx) error {
	var cs domain.Campsite
	if err := c.BodyParser(&cs); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Repo.Create(c.Context(), cs)
	if err != nil {
		return fail(c, "campsites.create.fail", err)
	}
	applog.Audit(c, "campsites.create", map[string]any{"id": created.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

type campsitePatch struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	Location        *string   `json:"location"`
	Capacity        *int      `json:"capacity"`
	PricePerNight   *float64  `json:"pricePerNight"`
	Amenities       *[]string `json:"amenities"`
	Rules           *[]string `json:"rules"`
	Images          *[]string `json:"images"`
	Rating          *float64  `json:"rating"`
	ExpectedVersion int       `json:"expectedVersion"`
}

func (p *campsitePatch) apply(cs *domain.Campsite) {
	if p.Name != nil {
		cs.Name = *p.Name
	}
	if p.Description != nil {
		cs.Description = *p.Description
	}
	if p.Location != nil {
		cs.Location = *p.Location
	}
	if p.Capacity != nil {
		cs.Capacity = *p.Capacity
	}
	if p.PricePerNight != nil {
		cs.PricePerNight = *p.PricePerNight
	}
	if p.Amenities != nil {
		cs.Amenities = *p.Amenities
	}
	if p.Rules != nil {
		cs.Rules = *p.Rules
	}
	if p.Images != nil {
		cs.Images = *p.Images
	}
	if p.Rating != nil {
		cs.Rating = *p.Rating
	}
}

// PUT /api/v1/campsites/:id (admin)
func (h *CampsiteHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var p campsitePatch
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid body")
	}
	updated, err := h.Repo.Update(c.Context(), id, p.ExpectedVersion, p.apply)
	if err != nil {
		return fail(c, "campsites.update.fail", err)
	}
	applog.Audit(c, "campsites.update", map[string]any{"id": id})
	return c.JSON(updated)
}

// DELETE /api/v1/campsites/:id (admin)
func (h *CampsiteHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return fail(c, "campsites.delete.fail", err)
	}
	applog.Audit(c, "campsites.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
