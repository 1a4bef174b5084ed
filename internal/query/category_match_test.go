package query_test

import (
	"testing"

	"wecamp/internal/domain"
	"wecamp/internal/query"
)

func tagged(id, slug string) domain.Gear {
	g := domain.Gear{Name: "x", Status: domain.StatusForSale}
	g.ID = "g-" + id + slug
	g.CategoryID = id
	g.Category = slug
	return g
}

func matchOne(t *testing.T, g domain.Gear, want string, m query.CategoryMatch) bool {
	t.Helper()
	res := query.Gear([]domain.Gear{g}, query.Filters{Category: want, Match: m}, query.SortNone, 1, 0)
	return res.Total == 1
}

func TestCategoryMatchLegacy(t *testing.T) {
	g := tagged("cat-tents", "tents")

	cases := []struct {
		want string
		hit  bool
	}{
		{"cat-tents", true}, // exact id
		{"tents", true},     // exact slug, also id suffix
		{"TENT", true},      // case-insensitive substring
		{"cooking", false},
		{"", true}, // no filter at all
	}
	for _, c := range cases {
		if got := matchOne(t, g, c.want, query.MatchLegacy); got != c.hit {
			t.Fatalf("legacy match %q = %v, want %v", c.want, got, c.hit)
		}
	}
}

func TestCategoryMatchExact(t *testing.T) {
	g := tagged("cat-tents", "tents")

	if !matchOne(t, g, "cat-tents", query.MatchExact) {
		t.Fatal("exact id should match")
	}
	if !matchOne(t, g, "tents", query.MatchExact) {
		t.Fatal("exact slug should match")
	}
	if matchOne(t, g, "tent", query.MatchExact) {
		t.Fatal("substring must not match under exact strategy")
	}
}

// The documented false positive: a broad substring also hits sibling
// categories under the legacy strategy, and exact mode removes it.
func TestCategoryMatchLegacyFalsePositive(t *testing.T) {
	tents := tagged("cat-tents", "tents")
	stakes := tagged("cat-tent-stakes", "tent-stakes")
	items := []domain.Gear{tents, stakes}

	legacy := query.Gear(items, query.Filters{Category: "tent", Match: query.MatchLegacy}, query.SortNone, 1, 0)
	if legacy.Total != 2 {
		t.Fatalf("legacy 'tent' should hit both, got %d", legacy.Total)
	}

	exact := query.Gear(items, query.Filters{Category: "tent", Match: query.MatchExact}, query.SortNone, 1, 0)
	if exact.Total != 0 {
		t.Fatalf("exact 'tent' should hit none, got %d", exact.Total)
	}
}

func TestParseCategoryMatch(t *testing.T) {
	if query.ParseCategoryMatch("exact") != query.MatchExact {
		t.Fatal("want exact")
	}
	if query.ParseCategoryMatch("legacy") != query.MatchLegacy {
		t.Fatal("want legacy")
	}
	if query.ParseCategoryMatch("") != query.MatchLegacy {
		t.Fatal("empty defaults to legacy")
	}
}
