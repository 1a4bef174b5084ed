package query_test

import (
	"testing"

	"wecamp/internal/domain"
	"wecamp/internal/query"
)

func site(id, name, location string, capacity int, price float64) domain.Campsite {
	cs := domain.Campsite{Name: name, Location: location, Capacity: capacity, PricePerNight: price}
	cs.ID = id
	return cs
}

func post(id, title string, published bool, tags ...string) domain.BlogPost {
	p := domain.BlogPost{Title: title, Slug: id, Published: published, Tags: tags}
	p.ID = id
	p.CreatedAt = "2026-02-0" + id[len(id)-1:] + "T00:00:00Z"
	return p
}

func TestCampsitesCapacityAndPrice(t *testing.T) {
	items := []domain.Campsite{
		site("s1", "Pine Cove", "Lake Arrowhead", 6, 45),
		site("s2", "Ridge Top", "Big Bear", 2, 30),
		site("s3", "River Bend", "Kern River", 8, 80),
	}

	res := query.Campsites(items, "", 4, nil, query.SortNone, 1, 0)
	if res.Total != 2 {
		t.Fatalf("minCapacity 4: want 2, got %d", res.Total)
	}

	ceiling := 60.0
	res = query.Campsites(items, "", 0, &ceiling, query.SortPriceAsc, 1, 0)
	if res.Total != 2 || res.Items[0].PricePerNight != 30 {
		t.Fatalf("maxPrice 60 price-asc: got %+v", res)
	}
}

func TestCampsitesSearchIncludesLocation(t *testing.T) {
	items := []domain.Campsite{
		site("s1", "Pine Cove", "Lake Arrowhead", 6, 45),
		site("s2", "Ridge Top", "Big Bear", 2, 30),
	}
	res := query.Campsites(items, "arrowhead", 0, nil, query.SortNone, 1, 0)
	if res.Total != 1 || res.Items[0].ID != "s1" {
		t.Fatalf("location search failed: %+v", res)
	}
}

func TestBlogPostsPublishedOnlyAndTag(t *testing.T) {
	items := []domain.BlogPost{
		post("p1", "Winter camping", true, "winter", "gear"),
		post("p2", "Draft notes", false, "winter"),
		post("p3", "Summer trails", true, "summer"),
	}

	res := query.BlogPosts(items, "", "", true, query.SortNone, 1, 0)
	if res.Total != 2 {
		t.Fatalf("publishedOnly: want 2, got %d", res.Total)
	}

	res = query.BlogPosts(items, "", "WINTER", false, query.SortNone, 1, 0)
	if res.Total != 2 {
		t.Fatalf("tag match is case-insensitive: want 2, got %d", res.Total)
	}
}

func TestBlogPostsDefaultNewestFirst(t *testing.T) {
	items := []domain.BlogPost{
		post("p1", "Oldest", true),
		post("p3", "Newest", true),
		post("p2", "Middle", true),
	}
	res := query.BlogPosts(items, "", "", true, query.SortNewest, 1, 0)
	if res.Items[0].ID != "p3" || res.Items[2].ID != "p1" {
		t.Fatalf("newest-first order wrong: %+v", res.Items)
	}
}
