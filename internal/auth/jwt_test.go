package auth_test

import (
	"testing"
	"time"

	"wecamp/internal/auth"
)

func TestSignAndParse(t *testing.T) {
	iss := auth.NewIssuer("secret", time.Hour)

	tok, err := iss.Sign("u-admin", "ADMIN")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := iss.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "u-admin" || claims.Role != "ADMIN" {
		t.Fatalf("claims round trip wrong: %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := auth.NewIssuer("secret-a", time.Hour).Sign("u1", "USER")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.NewIssuer("secret-b", time.Hour).Parse(tok); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	iss := auth.NewIssuer("secret", -time.Minute)
	tok, err := iss.Sign("u1", "USER")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := iss.Parse(tok); err == nil {
		t.Fatal("expired token must not parse")
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct{ header, want string }{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"Basic abc", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := auth.BearerToken(c.header); got != c.want {
			t.Fatalf("BearerToken(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}
