package services

import (
	"context"

	"wecamp/internal/domain"
	"wecamp/internal/query"
	"wecamp/internal/repos"
)

// Page is the list-response envelope every catalog endpoint returns.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type CatalogService struct {
	Gear     *repos.GearRepo
	Sites    *repos.CampsiteRepo
	Blog     *repos.BlogRepo
	Cats     *repos.CategoryRepo
	Brands   *repos.BrandRepo
	Colors   *repos.ColorRepo
	Match    query.CategoryMatch
	PageSize int
}

func (s *CatalogService) pageWindow(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = s.PageSize
	}
	if size <= 0 {
		size = 12
	}
	return page, size
}

func pageOf[T any](res query.Result[T], page, size int) Page[T] {
	return Page[T]{
		Data:       res.Items,
		Total:      res.Total,
		Page:       page,
		Limit:      size,
		TotalPages: query.Pages(res.Total, size),
	}
}

// ListGear loads the gear snapshot and runs the query engine over it.
func (s *CatalogService) ListGear(ctx context.Context, f query.Filters, sortBy query.Sort, page, size int) (Page[domain.Gear], error) {
	page, size = s.pageWindow(page, size)
	f.Match = s.Match
	items, err := s.Gear.All(ctx)
	if err != nil {
		return Page[domain.Gear]{}, err
	}
	return pageOf(query.Gear(items, f, sortBy, page, size), page, size), nil
}

func (s *CatalogService) ListCampsites(ctx context.Context, search string, minCapacity int, maxPrice *float64, sortBy query.Sort, page, size int) (Page[domain.Campsite], error) {
	page, size = s.pageWindow(page, size)
	items, err := s.Sites.All(ctx)
	if err != nil {
		return Page[domain.Campsite]{}, err
	}
	return pageOf(query.Campsites(items, search, minCapacity, maxPrice, sortBy, page, size), page, size), nil
}

func (s *CatalogService) ListBlog(ctx context.Context, search, tag string, publishedOnly bool, sortBy query.Sort, page, size int) (Page[domain.BlogPost], error) {
	page, size = s.pageWindow(page, size)
	items, err := s.Blog.All(ctx)
	if err != nil {
		return Page[domain.BlogPost]{}, err
	}
	return pageOf(query.BlogPosts(items, search, tag, publishedOnly, sortBy, page, size), page, size), nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.Cats.All(ctx)
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return s.Brands.All(ctx)
}

func (s *CatalogService) ListColors(ctx context.Context) ([]domain.Color, error) {
	return s.Colors.All(ctx)
}
