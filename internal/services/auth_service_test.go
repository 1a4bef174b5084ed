package services_test

import (
	"context"
	"testing"
	"time"

	"wecamp/internal/auth"
	"wecamp/internal/kvstore"
	"wecamp/internal/repos"
	"wecamp/internal/services"
)

func newAuthService(s kvstore.Store) *services.AuthService {
	return &services.AuthService{
		Users:  repos.NewUserRepo(s),
		Tokens: auth.NewIssuer("test-secret", time.Hour),
	}
}

// The second login reads the users slot back from storage rather than the
// seed slice, so the bcrypt hash has to survive the round trip.
func TestLoginRepeats(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(kvstore.NewMemory())

	if _, _, err := svc.Login(ctx, "admin@wecamp.test", "Campfire1!"); err != nil {
		t.Fatalf("first login: %v", err)
	}
	tok, u, err := svc.Login(ctx, "admin@wecamp.test", "Campfire1!")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if tok == "" || u.Role != "ADMIN" {
		t.Fatalf("unexpected login result: token=%q user=%+v", tok, u)
	}

	if _, _, err := svc.Login(ctx, "admin@wecamp.test", "wrong"); err != services.ErrBadCreds {
		t.Fatalf("bad password: want ErrBadCreds, got %v", err)
	}
}

func TestLoginSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := t.TempDir() + "/auth.db"

	s1, err := kvstore.OpenSQLite(dsn)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := newAuthService(s1).Login(ctx, "admin@wecamp.test", "Campfire1!"); err != nil {
		t.Fatalf("login before reopen: %v", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatal(err)
	}

	// A fresh process sees only what was persisted.
	s2, err := kvstore.OpenSQLite(dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	if _, _, err := newAuthService(s2).Login(ctx, "admin@wecamp.test", "Campfire1!"); err != nil {
		t.Fatalf("login after reopen: %v", err)
	}
}
