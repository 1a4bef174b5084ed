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

type BlogHandler struct {
	Catalog *services.CatalogService
	Repo    *repos.BlogRepo
}

// GET /api/v1/blog lists published posts; admins can include drafts via ?drafts=1.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("q"))
	tag := strings.TrimSpace(c.Query("tag"))
	page := validate.Page(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	sortBy := query.Sort(c.Query("sort"))
	publishedOnly := c.Query("drafts") != "1" || c.Locals("userID") == nil

	res, err := h.Catalog.ListBlog(c.Context(), search, tag, publishedOnly, sortBy, page, limit)
	if err != nil {
		return fail(c, "blog.list.fail", err)
	}
	return c.JSON(res)
}

// GET /api/v1/blog/:slug
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		return badRequest(c, "invalid slug")
	}
	p, err := h.Repo.BySlug(c.Context(), slug)
	if err != nil {
		return fail(c, "blog.get.fail", err)
	}
	if !p.Published && c.Locals("userID") == nil {
		return fail(c, "blog.get.fail", &domain.NotFoundError{Entity: "blog post", ID: slug})
	}
	return c.JSON(p)
}

// POST /api/v1/blog (admin)
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var p domain.BlogPost
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid body")
	}
	created, err := h.Repo.Create(c.Context(), p)
	if err != nil {
		return fail(c, "blog.create.fail", err)
	}
	applog.Audit(c, "blog.create", map[string]any{"id": created.ID, "slug": created.Slug})
	return c.Status(fiber.StatusCreated).JSON(created)
}

type blogPatch struct {
	Title           *string   `json:"title"`
	Slug            *string   `json:"slug"`
	Excerpt         *string   `json:"excerpt"`
	Content         *string   `json:"content"`
	CoverImage      *string   `json:"coverImage"`
	Tags            *[]string `json:"tags"`
	Published       *bool     `json:"published"`
	ExpectedVersion int       `json:"expectedVersion"`
}

// PUT /api/v1/blog/:id (admin)
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	var p blogPatch
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid body")
	}
	updated, err := h.Repo.Update(c.Context(), id, p.ExpectedVersion, func(post *domain.BlogPost) {
		if p.Title != nil {
			post.Title = *p.Title
		}
		if p.Slug != nil {
			post.Slug = *p.Slug
		}
		if p.Excerpt != nil {
			post.Excerpt = *p.Excerpt
		}
		if p.Content != nil {
			post.Content = *p.Content
		}
		if p.CoverImage != nil {
			post.CoverImage = *p.CoverImage
		}
		if p.Tags != nil {
			post.Tags = *p.Tags
		}
		if p.Published != nil {
			post.Published = *p.Published
		}
	})
	if err != nil {
		return fail(c, "blog.update.fail", err)
	}
	applog.Audit(c, "blog.update", map[string]any{"id": id})
	return c.JSON(updated)
}

// DELETE /api/v1/blog/:id (admin)
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid id")
	}
	if err := h.Repo.Delete(c.Context(), id); err != nil {
		return fail(c, "blog.delete.fail", err)
	}
	applog.Audit(c, "blog.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
