package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"wecamp/internal/auth"
	"wecamp/internal/config"
	"wecamp/internal/http/handlers"
	"wecamp/internal/kvstore"
	"wecamp/internal/notify"
	"wecamp/internal/repos"
	"wecamp/internal/services"
)

// Minimal API app over an in-memory store.
func newAPIApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()

	store := kvstore.WithNotify(kvstore.NewMemory(), notify.NewInProc())
	cfg := config.Config{AutoApprove: true, CategoryMatch: "legacy", PageSize: 12}

	userRepo := repos.NewUserRepo(store)
	tokens := auth.NewIssuer("test-secret", time.Hour)
	authSvc := &services.AuthService{Users: userRepo, Tokens: tokens}

	deps := handlers.NewDeps(store, notify.NewInProc(), cfg, authSvc)

	app := fiber.New()
	app.Use(requestid.New())

	api := app.Group("/api/v1", handlers.OptionalAuth(authSvc))
	admin := handlers.RequireAdmin(authSvc)

	api.Post("/auth/login", deps.AuthHandler.Login)
	api.Get("/gear", deps.GearHandler.List)
	api.Get("/gear/:id", deps.GearHandler.Get)
	api.Post("/gear", admin, deps.GearHandler.Create)
	api.Put("/gear/:id", admin, deps.GearHandler.Update)
	api.Delete("/gear/:id", admin, deps.GearHandler.Delete)
	api.Get("/brands", deps.TaxonomyHandler.ListBrands)
	api.Get("/reviews", deps.ReviewHandler.List)
	api.Post("/reviews", deps.ReviewHandler.Create)
	api.Get("/messages", admin, deps.ContactHandler.ListMessages)
	api.Post("/messages", deps.ContactHandler.SubmitMessage)

	return app, authSvc
}

func do(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, raw
}

func adminToken(t *testing.T, authSvc *services.AuthService) string {
	t.Helper()
	tok, _, err := authSvc.Login(context.Background(), "admin@wecamp.test", "Campfire1!")
	if err != nil {
		t.Fatalf("seeded admin login failed: %v", err)
	}
	return tok
}

func TestLoginIssuesToken(t *testing.T) {
	app, _ := newAPIApp(t)

	resp, raw := do(t, app, "POST", "/api/v1/auth/login", "",
		map[string]string{"email": "admin@wecamp.test", "password": "Campfire1!"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: want 200, got %d (%s)", resp.StatusCode, raw)
	}
	var out struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Token == "" || out.User.Role != "ADMIN" {
		t.Fatalf("unexpected login payload: %s", raw)
	}

	resp, _ = do(t, app, "POST", "/api/v1/auth/login", "",
		map[string]string{"email": "admin@wecamp.test", "password": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password: want 401, got %d", resp.StatusCode)
	}
}

// Logging in twice exercises the users slot after it has been persisted;
// the credentials must keep working and the stored hash must never show up
// in a response.
func TestLoginTwiceHashStaysServerSide(t *testing.T) {
	app, _ := newAPIApp(t)
	creds := map[string]string{"email": "admin@wecamp.test", "password": "Campfire1!"}

	for attempt := 1; attempt <= 2; attempt++ {
		resp, raw := do(t, app, "POST", "/api/v1/auth/login", "", creds)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("login attempt %d: want 200, got %d (%s)", attempt, resp.StatusCode, raw)
		}
		var out struct {
			User map[string]any `json:"user"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatal(err)
		}
		if _, leaked := out.User["hash"]; leaked {
			t.Fatalf("attempt %d leaked the password hash: %s", attempt, raw)
		}
	}
}

func TestAdminGateOnGearWrites(t *testing.T) {
	app, authSvc := newAPIApp(t)
	body := map[string]any{"name": "Trail Tent", "pricePerDay": 18.5}

	// Anonymous write is rejected.
	resp, _ := do(t, app, "POST", "/api/v1/gear", "", body)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous create: want 401, got %d", resp.StatusCode)
	}

	// Garbage token is rejected too.
	resp, _ = do(t, app, "POST", "/api/v1/gear", "not-a-token", body)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token: want 401, got %d", resp.StatusCode)
	}

	// Admin succeeds.
	resp, raw := do(t, app, "POST", "/api/v1/gear", adminToken(t, authSvc), body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("admin create: want 201, got %d (%s)", resp.StatusCode, raw)
	}
}

func TestGearListEnvelope(t *testing.T) {
	app, authSvc := newAPIApp(t)
	tok := adminToken(t, authSvc)

	for _, name := range []string{"Tent One", "Tent Two", "Tent Three"} {
		resp, raw := do(t, app, "POST", "/api/v1/gear", tok,
			map[string]any{"name": name, "pricePerDay": 10})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create %s: %d (%s)", name, resp.StatusCode, raw)
		}
	}

	resp, raw := do(t, app, "GET", "/api/v1/gear?page=1&limit=2", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Data       []map[string]any `json:"data"`
		Total      int              `json:"total"`
		Page       int              `json:"page"`
		Limit      int              `json:"limit"`
		TotalPages int              `json:"totalPages"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Total != 3 || len(out.Data) != 2 || out.Page != 1 || out.Limit != 2 || out.TotalPages != 2 {
		t.Fatalf("bad envelope: %s", raw)
	}
}

func TestGearUpdateConflictMapsTo409(t *testing.T) {
	app, authSvc := newAPIApp(t)
	tok := adminToken(t, authSvc)

	_, raw := do(t, app, "POST", "/api/v1/gear", tok,
		map[string]any{"name": "Stove", "pricePerDay": 8})
	var created struct {
		ID      string `json:"id"`
		Version int    `json:"version"`
	}
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatal(err)
	}

	// First writer bumps the version.
	resp, _ := do(t, app, "PUT", "/api/v1/gear/"+created.ID, tok,
		map[string]any{"pricePerDay": 9, "expectedVersion": created.Version})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first update: want 200, got %d", resp.StatusCode)
	}

	// Second writer still holds the old version.
	resp, raw = do(t, app, "PUT", "/api/v1/gear/"+created.ID, tok,
		map[string]any{"pricePerDay": 11, "expectedVersion": created.Version})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("stale update: want 409, got %d (%s)", resp.StatusCode, raw)
	}
	var conflict struct {
		Stale bool `json:"stale"`
	}
	if err := json.Unmarshal(raw, &conflict); err != nil {
		t.Fatal(err)
	}
	if !conflict.Stale {
		t.Fatalf("conflict body should flag stale: %s", raw)
	}
}

func TestGearNotFoundMapsTo404(t *testing.T) {
	app, _ := newAPIApp(t)
	resp, _ := do(t, app, "GET", "/api/v1/gear/no-such-id", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestBrandsListSeeded(t *testing.T) {
	app, _ := newAPIApp(t)
	resp, raw := do(t, app, "GET", "/api/v1/brands", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Total == 0 || len(out.Data) != out.Total {
		t.Fatalf("seeded brands missing: %s", raw)
	}
}

func TestReviewSubmitAutoApproved(t *testing.T) {
	app, _ := newAPIApp(t)

	resp, raw := do(t, app, "POST", "/api/v1/reviews", "",
		map[string]any{"gearId": "g1", "rating": 4, "comment": "solid"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit: want 201, got %d (%s)", resp.StatusCode, raw)
	}
	var rv struct {
		IsApproved bool `json:"isApproved"`
	}
	if err := json.Unmarshal(raw, &rv); err != nil {
		t.Fatal(err)
	}
	if !rv.IsApproved {
		t.Fatalf("auto-approve config should publish immediately: %s", raw)
	}

	// Missing target is a 400.
	resp, _ = do(t, app, "GET", "/api/v1/reviews", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("list without target: want 400, got %d", resp.StatusCode)
	}

	resp, raw = do(t, app, "GET", "/api/v1/reviews?gearId=g1", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatal(err)
	}
	if out.Total != 1 {
		t.Fatalf("want 1 review, got %s", raw)
	}
}

func TestMessageFlow(t *testing.T) {
	app, authSvc := newAPIApp(t)

	resp, _ := do(t, app, "POST", "/api/v1/messages", "",
		map[string]any{"name": "Pat", "email": "pat@example.com", "body": "hi"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit message: want 201, got %d", resp.StatusCode)
	}

	// Listing is admin-only.
	resp, _ = do(t, app, "GET", "/api/v1/messages", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous message list: want 401, got %d", resp.StatusCode)
	}
	resp, raw := do(t, app, "GET", "/api/v1/messages", adminToken(t, authSvc), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin message list: want 200, got %d (%s)", resp.StatusCode, raw)
	}
}

func TestBadEmailRejected(t *testing.T) {
	app, _ := newAPIApp(t)
	resp, _ := do(t, app, "POST", "/api/v1/messages", "",
		map[string]any{"name": "Pat", "email": "not-an-email", "body": "hi"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}
