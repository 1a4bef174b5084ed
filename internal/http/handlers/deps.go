package handlers

import (
	"context"

	"wecamp/internal/config"
	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
	"wecamp/internal/notify"
	"wecamp/internal/query"
	"wecamp/internal/repos"
	"wecamp/internal/services"
	"wecamp/internal/viewstate"
)

type Deps struct {
	GearHandler      *GearHandler
	CampsiteHandler  *CampsiteHandler
	BlogHandler      *BlogHandler
	TaxonomyHandler  *TaxonomyHandler
	ReviewHandler    *ReviewHandler
	ContactHandler   *ContactHandler
	ReferenceHandler *ReferenceHandler
	AdminHandler     *AdminHandler
	AuthHandler      *AuthHandler
}

func NewDeps(store kvstore.Store, bus notify.Bus, cfg config.Config, auth *services.AuthService) *Deps {
	gearRepo := repos.NewGearRepo(store)
	siteRepo := repos.NewCampsiteRepo(store)
	blogRepo := repos.NewBlogRepo(store)
	catRepo := repos.NewCategoryRepo(store)
	brandRepo := repos.NewBrandRepo(store)
	colorRepo := repos.NewColorRepo(store)
	reviewRepo := repos.NewReviewRepo(store)
	msgRepo := repos.NewMessageRepo(store)
	apptRepo := repos.NewAppointmentRepo(store)
	newsRepo := repos.NewNewsletterRepo(store)
	refBrandRepo := repos.NewReferenceBrandRepo(store)
	refImageRepo := repos.NewReferenceImageRepo(store)

	catalogSvc := &services.CatalogService{
		Gear:     gearRepo,
		Sites:    siteRepo,
		Blog:     blogRepo,
		Cats:     catRepo,
		Brands:   brandRepo,
		Colors:   colorRepo,
		Match:    query.ParseCategoryMatch(cfg.CategoryMatch),
		PageSize: cfg.PageSize,
	}
	reviewSvc := &services.ReviewService{Reviews: reviewRepo, AutoApprove: cfg.AutoApprove}
	contactSvc := &services.ContactService{Messages: msgRepo, Appointments: apptRepo, Newsletter: newsRepo}

	// Dashboard gear cache: reloads itself whenever the gear slot changes,
	// here or in another process sharing the bus.
	gearView := viewstate.New(func(ctx context.Context, p viewstate.Params) (query.Result[domain.Gear], error) {
		items, err := gearRepo.All(ctx)
		if err != nil {
			return query.Result[domain.Gear]{}, err
		}
		return query.Gear(items, p.Filters, p.Sort, p.Page, p.PageSize), nil
	})
	gearView.Watch(bus, notify.TopicFor(repos.KeyGear))
	gearView.Load(context.Background(), viewstate.Params{Sort: query.SortNewest, Page: 1, PageSize: cfg.PageSize})

	return &Deps{
		GearHandler:      &GearHandler{Catalog: catalogSvc, Repo: gearRepo},
		CampsiteHandler:  &CampsiteHandler{Catalog: catalogSvc, Repo: siteRepo},
		BlogHandler:      &BlogHandler{Catalog: catalogSvc, Repo: blogRepo},
		TaxonomyHandler:  &TaxonomyHandler{Catalog: catalogSvc, Cats: catRepo, Brands: brandRepo, Colors: colorRepo},
		ReviewHandler:    &ReviewHandler{Reviews: reviewSvc},
		ContactHandler:   &ContactHandler{Contact: contactSvc},
		ReferenceHandler: &ReferenceHandler{Brands: refBrandRepo, Images: refImageRepo},
		AuthHandler:      &AuthHandler{Auth: auth},
		AdminHandler: &AdminHandler{
			Gear: gearRepo, Sites: siteRepo, Blog: blogRepo, Brands: brandRepo,
			Reviews: reviewRepo, Messages: msgRepo, Appts: apptRepo, Newsletter: newsRepo,
			GearView: gearView,
		},
	}
}
