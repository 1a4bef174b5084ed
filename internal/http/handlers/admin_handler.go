package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"wecamp/internal/domain"
	"wecamp/internal/repos"
	"wecamp/internal/viewstate"
)

// AdminHandler renders the ops dashboard: one row per record slot with its
// current count, so an operator can eyeball the dataset without curl.
type AdminHandler struct {
	Gear       *repos.GearRepo
	Sites      *repos.CampsiteRepo
	Blog       *repos.BlogRepo
	Brands     *repos.BrandRepo
	Reviews    *repos.ReviewRepo
	Messages   *repos.MessageRepo
	Appts      *repos.AppointmentRepo
	Newsletter *repos.NewsletterRepo

	// GearView is the bus-refreshed catalog cache shown on the dashboard.
	GearView *viewstate.Store[domain.Gear]
}

type slotRow struct {
	Name  string
	Count int
}

// GET /
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	ctx := c.Context()
	rows := []slotRow{
		{Name: "Gear", Count: h.count(ctx, h.Gear.Count)},
		{Name: "Campsites", Count: h.count(ctx, h.Sites.Count)},
		{Name: "Blog posts", Count: h.count(ctx, h.Blog.Count)},
		{Name: "Brands", Count: h.count(ctx, h.Brands.Count)},
		{Name: "Reviews", Count: h.count(ctx, h.Reviews.Count)},
		{Name: "Messages", Count: h.count(ctx, h.Messages.Count)},
		{Name: "Appointments", Count: h.count(ctx, h.Appts.Count)},
		{Name: "Newsletter", Count: h.count(ctx, h.Newsletter.Count)},
	}
	snap := h.GearView.Snapshot()
	return c.Render("dashboard", fiber.Map{
		"Title":      "WeCamp Ops",
		"Rows":       rows,
		"CacheState": snap.State.String(),
		"CacheTotal": snap.Total,
	})
}

func (h *AdminHandler) count(ctx context.Context, fn func(context.Context) (int, error)) int {
	n, err := fn(ctx)
	if err != nil {
		return -1
	}
	return n
}
