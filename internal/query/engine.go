// Package query is the catalog query engine: pure filter/sort/paginate over
// an in-memory snapshot. It borrows the slice for the duration of one call,
// never mutates it, and never returns an error: malformed bounds are used
// literally and simply produce empty or full result sets.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"wecamp/internal/domain"
)

type Sort string

const (
	SortNone      Sort = ""
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortNameAsc   Sort = "name-asc"
	SortNameDesc  Sort = "name-desc"
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
)

// StatusForSaleOrSold is the widened status filter value meaning
// status ∈ {for-sale, sold}.
const StatusForSaleOrSold = "for-sale-or-sold"

// Filters are combined with AND across kinds; a filter whose fields span
// several record attributes (Search) matches with OR within itself.
// Zero values mean "not filtered".
type Filters struct {
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	Available *bool
	Status    string
	Category  string
	Match     CategoryMatch
	Brand     string
	Color     string
	MinRating *float64
}

type Result[T any] struct {
	Items []T
	Total int
}

// Gear applies the predicate chain, then the comparator, then the page
// slice. Total is the filtered count before slicing.
func Gear(items []domain.Gear, f Filters, sortBy Sort, page, pageSize int) Result[domain.Gear] {
	kept := make([]domain.Gear, 0, len(items))
	for _, g := range items {
		if matchGear(g, f) {
			kept = append(kept, g)
		}
	}
	sortGear(kept, sortBy)
	return Result[domain.Gear]{Items: paginate(kept, page, pageSize), Total: len(kept)}
}

func matchGear(g domain.Gear, f Filters) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		hit := strings.Contains(strings.ToLower(g.Name), q) ||
			strings.Contains(strings.ToLower(g.Description), q) ||
			strings.Contains(strings.ToLower(g.Brand), q) ||
			strings.Contains(strings.ToLower(g.Color), q)
		if !hit {
			return false
		}
	}
	if f.MinPrice != nil && g.PricePerDay < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && g.PricePerDay > *f.MaxPrice {
		return false
	}
	if f.Available != nil && g.Available != *f.Available {
		return false
	}
	if f.Status != "" {
		if f.Status == StatusForSaleOrSold {
			if g.Status != domain.StatusForSale && g.Status != domain.StatusSold {
				return false
			}
		} else if g.Status != f.Status {
			return false
		}
	}
	if f.Category != "" && !f.Match.matches(g, f.Category) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(g.Brand, f.Brand) {
		return false
	}
	if f.Color != "" && !strings.EqualFold(g.Color, f.Color) {
		return false
	}
	if f.MinRating != nil && g.Rating < *f.MinRating {
		return false
	}
	return true
}

func sortGear(items []domain.Gear, sortBy Sort) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].PricePerDay < items[j].PricePerDay })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].PricePerDay > items[j].PricePerDay })
	case SortNameAsc:
		cl := newCollator()
		sort.SliceStable(items, func(i, j int) bool { return cl.CompareString(items[i].Name, items[j].Name) < 0 })
	case SortNameDesc:
		cl := newCollator()
		sort.SliceStable(items, func(i, j int) bool { return cl.CompareString(items[i].Name, items[j].Name) > 0 })
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt > items[j].CreatedAt })
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt < items[j].CreatedAt })
	}
	// SortNone: input order preserved exactly.
}

// Collators are not safe for concurrent use, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// paginate slices [(page-1)*size, page*size), clamped to the set.
// A non-positive pageSize disables slicing.
func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Pages is the total page count for a filtered set.
func Pages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
