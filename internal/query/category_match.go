package query

import "strings"

// CategoryMatch selects how a category filter value is compared against a
// gear record's category tagging. Historical data tags categories three
// different ways (full ID, bare slug, free-form label), which is why the
// legacy strategy exists at all.
type CategoryMatch int

const (
	// MatchLegacy accepts an exact categoryId, an exact slug, an
	// ID-suffix, or a case-insensitive substring of either field. The
	// substring fallback can produce false positives ("tent" also hits
	// "tent-stakes"); it is kept because legacy records depend on it.
	MatchLegacy CategoryMatch = iota

	// MatchExact accepts only categoryId or slug equality.
	MatchExact
)

func ParseCategoryMatch(s string) CategoryMatch {
	if strings.EqualFold(strings.TrimSpace(s), "exact") {
		return MatchExact
	}
	return MatchLegacy
}

func (m CategoryMatch) String() string {
	if m == MatchExact {
		return "exact"
	}
	return "legacy"
}

type categorized interface {
	CategoryFields() (id, slug string)
}

func (m CategoryMatch) matches(g categorized, want string) bool {
	id, slug := g.CategoryFields()
	if id == want || slug == want {
		return true
	}
	if m == MatchExact {
		return false
	}
	if want == "" {
		return false
	}
	if strings.HasSuffix(id, want) {
		return true
	}
	w := strings.ToLower(want)
	return strings.Contains(strings.ToLower(id), w) ||
		strings.Contains(strings.ToLower(slug), w)
}
