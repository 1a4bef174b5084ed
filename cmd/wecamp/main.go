package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"wecamp/internal/auth"
	"wecamp/internal/config"
	"wecamp/internal/http/handlers"
	"wecamp/internal/kvstore"
	applog "wecamp/internal/log"
	"wecamp/internal/notify"
	"wecamp/internal/repos"
	"wecamp/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := kvstore.OpenSQLite(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Change notifier: redis bridges instances sharing one database file,
	// otherwise signals stay in-process.
	var bus notify.Bus
	if cfg.RedisAddr != "" {
		rb, err := notify.NewRedis(cfg.RedisAddr)
		if err != nil {
			log.Printf("[warn] redis notifier unavailable (%v); using in-process bus", err)
			bus = notify.NewInProc()
		} else {
			bus = rb
		}
	} else {
		bus = notify.NewInProc()
	}
	defer bus.Close()

	store := kvstore.WithNotify(db, bus)

	// Auth wiring
	userRepo := repos.NewUserRepo(store)
	tokens := auth.NewIssuer(cfg.JWTSecret, 24*time.Hour)
	authSvc := &services.AuthService{Users: userRepo, Tokens: tokens}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(store, bus, cfg, authSvc)

	app.Get("/", deps.AdminHandler.Dashboard)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	api := app.Group("/api/v1", handlers.OptionalAuth(authSvc))
	admin := handlers.RequireAdmin(authSvc)

	// Auth (login throttled)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, retry later"})
		},
	}), deps.AuthHandler.Login)

	// Gear
	api.Get("/gear", deps.GearHandler.List)
	api.Get("/gear/:id", deps.GearHandler.Get)
	api.Post("/gear", admin, deps.GearHandler.Create)
	api.Put("/gear/:id", admin, deps.GearHandler.Update)
	api.Delete("/gear/:id", admin, deps.GearHandler.Delete)

	// Campsites
	api.Get("/campsites", deps.CampsiteHandler.List)
	api.Get("/campsites/:id", deps.CampsiteHandler.Get)
	api.Post("/campsites", admin, deps.CampsiteHandler.Create)
	api.Put("/campsites/:id", admin, deps.CampsiteHandler.Update)
	api.Delete("/campsites/:id", admin, deps.CampsiteHandler.Delete)

	// Taxonomy
	api.Get("/categories", deps.TaxonomyHandler.ListCategories)
	api.Post("/categories", admin, deps.TaxonomyHandler.CreateCategory)
	api.Put("/categories/:id", admin, deps.TaxonomyHandler.UpdateCategory)
	api.Delete("/categories/:id", admin, deps.TaxonomyHandler.DeleteCategory)
	api.Get("/brands", deps.TaxonomyHandler.ListBrands)
	api.Post("/brands", admin, deps.TaxonomyHandler.CreateBrand)
	api.Put("/brands/:id", admin, deps.TaxonomyHandler.RenameBrand)
	api.Delete("/brands/:id", admin, deps.TaxonomyHandler.DeleteBrand)
	api.Get("/colors", deps.TaxonomyHandler.ListColors)
	api.Post("/colors", admin, deps.TaxonomyHandler.CreateColor)
	api.Put("/colors/:id", admin, deps.TaxonomyHandler.UpdateColor)
	api.Delete("/colors/:id", admin, deps.TaxonomyHandler.DeleteColor)

	// Blog
	api.Get("/blog", deps.BlogHandler.List)
	api.Get("/blog/:slug", deps.BlogHandler.Get)
	api.Post("/blog", admin, deps.BlogHandler.Create)
	api.Put("/blog/:id", admin, deps.BlogHandler.Update)
	api.Delete("/blog/:id", admin, deps.BlogHandler.Delete)

	// Reviews
	api.Get("/reviews", deps.ReviewHandler.List)
	api.Post("/reviews", deps.ReviewHandler.Create)
	api.Post("/reviews/:id/helpful", deps.ReviewHandler.MarkHelpful)
	api.Post("/reviews/:id/approve", admin, deps.ReviewHandler.Approve)
	api.Delete("/reviews/:id", admin, deps.ReviewHandler.Delete)

	// Contact (public posts throttled)
	contactLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.contact.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})
	api.Post("/messages", contactLimiter, deps.ContactHandler.SubmitMessage)
	api.Get("/messages", admin, deps.ContactHandler.ListMessages)
	api.Post("/messages/:id/status", admin, deps.ContactHandler.MarkMessage)
	api.Delete("/messages/:id", admin, deps.ContactHandler.DeleteMessage)
	api.Post("/appointments", contactLimiter, deps.ContactHandler.BookAppointment)
	api.Get("/appointments", admin, deps.ContactHandler.ListAppointments)
	api.Post("/appointments/:id/status", admin, deps.ContactHandler.MoveAppointment)
	api.Post("/newsletter", contactLimiter, deps.ContactHandler.Subscribe)
	api.Get("/newsletter", admin, deps.ContactHandler.ListSubscriptions)
	api.Delete("/newsletter/:email", deps.ContactHandler.Unsubscribe)

	// Reference gallery
	api.Get("/reference/brands", deps.ReferenceHandler.ListBrands)
	api.Post("/reference/brands", admin, deps.ReferenceHandler.CreateBrand)
	api.Delete("/reference/brands/:id", admin, deps.ReferenceHandler.DeleteBrand)
	api.Get("/reference/images", deps.ReferenceHandler.ListImages)
	api.Post("/reference/images", admin, deps.ReferenceHandler.CreateImage)
	api.Delete("/reference/images/:id", admin, deps.ReferenceHandler.DeleteImage)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
