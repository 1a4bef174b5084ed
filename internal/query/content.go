package query

import (
	"sort"
	"strings"

	"wecamp/internal/domain"
)

// Campsites filters by free-text search (name, description, location),
// optional capacity floor and price ceiling, then sorts and slices.
// Price sorts compare PricePerNight.
func Campsites(items []domain.Campsite, search string, minCapacity int, maxPrice *float64, sortBy Sort, page, pageSize int) Result[domain.Campsite] {
	q := strings.ToLower(strings.TrimSpace(search))
	kept := make([]domain.Campsite, 0, len(items))
	for _, cs := range items {
		if q != "" {
			hit := strings.Contains(strings.ToLower(cs.Name), q) ||
				strings.Contains(strings.ToLower(cs.Description), q) ||
				strings.Contains(strings.ToLower(cs.Location), q)
			if !hit {
				continue
			}
		}
		if minCapacity > 0 && cs.Capacity < minCapacity {
			continue
		}
		if maxPrice != nil && cs.PricePerNight > *maxPrice {
			continue
		}
		kept = append(kept, cs)
	}

	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].PricePerNight < kept[j].PricePerNight })
	case SortPriceDesc:
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].PricePerNight > kept[j].PricePerNight })
	case SortNameAsc:
		cl := newCollator()
		sort.SliceStable(kept, func(i, j int) bool { return cl.CompareString(kept[i].Name, kept[j].Name) < 0 })
	case SortNameDesc:
		cl := newCollator()
		sort.SliceStable(kept, func(i, j int) bool { return cl.CompareString(kept[i].Name, kept[j].Name) > 0 })
	case SortNewest:
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].CreatedAt > kept[j].CreatedAt })
	case SortOldest:
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].CreatedAt < kept[j].CreatedAt })
	}

	return Result[domain.Campsite]{Items: paginate(kept, page, pageSize), Total: len(kept)}
}

// BlogPosts filters by search (title, excerpt, content), optional tag, and
// publication state, newest first unless told otherwise.
func BlogPosts(items []domain.BlogPost, search, tag string, publishedOnly bool, sortBy Sort, page, pageSize int) Result[domain.BlogPost] {
	q := strings.ToLower(strings.TrimSpace(search))
	kept := make([]domain.BlogPost, 0, len(items))
	for _, p := range items {
		if publishedOnly && !p.Published {
			continue
		}
		if q != "" {
			hit := strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Excerpt), q) ||
				strings.Contains(strings.ToLower(p.Content), q)
			if !hit {
				continue
			}
		}
		if tag != "" && !hasTag(p.Tags, tag) {
			continue
		}
		kept = append(kept, p)
	}

	switch sortBy {
	case SortOldest:
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].CreatedAt < kept[j].CreatedAt })
	case SortNameAsc:
		cl := newCollator()
		sort.SliceStable(kept, func(i, j int) bool { return cl.CompareString(kept[i].Title, kept[j].Title) < 0 })
	case SortNone:
		// input order preserved
	default:
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].CreatedAt > kept[j].CreatedAt })
	}

	return Result[domain.BlogPost]{Items: paginate(kept, page, pageSize), Total: len(kept)}
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
