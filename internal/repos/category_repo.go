package repos

import (
	"context"
	"sort"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type CategoryRepo struct {
	c collection[domain.Category, *domain.Category]
}

func NewCategoryRepo(s kvstore.Store) *CategoryRepo {
	return &CategoryRepo{c: collection[domain.Category, *domain.Category]{
		store: s, key: KeyCategories, entity: "category", seed: seedCategories,
	}}
}

func checkCategory(cat *domain.Category) error {
	if strings.TrimSpace(cat.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(cat.Slug) == "" {
		return &domain.ValidationError{Field: "slug", Reason: "required"}
	}
	return nil
}

// All returns categories ordered by their sort key, then name.
func (r *CategoryRepo) All(ctx context.Context) ([]domain.Category, error) {
	list, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Order != list[j].Order {
			return list[i].Order < list[j].Order
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (r *CategoryRepo) ByID(ctx context.Context, id string) (domain.Category, error) {
	return r.c.byID(ctx, id)
}

func (r *CategoryRepo) BySlug(ctx context.Context, slug string) (domain.Category, error) {
	list, err := r.c.all(ctx)
	if err != nil {
		return domain.Category{}, err
	}
	for _, cat := range list {
		if cat.Slug == slug {
			return cat, nil
		}
	}
	return domain.Category{}, &domain.NotFoundError{Entity: "category", ID: slug}
}

func (r *CategoryRepo) Create(ctx context.Context, cat domain.Category) (domain.Category, error) {
	cat.Slug = strings.TrimSpace(strings.ToLower(cat.Slug))
	if err := checkCategory(&cat); err != nil {
		return domain.Category{}, err
	}
	return r.c.insert(ctx, cat, func(existing domain.Category) *domain.DuplicateError {
		if existing.Slug == cat.Slug {
			return &domain.DuplicateError{Entity: "category", Field: "slug", Value: cat.Slug}
		}
		return nil
	})
}

func (r *CategoryRepo) Update(ctx context.Context, id string, expect int, apply func(*domain.Category)) (domain.Category, error) {
	return r.c.update(ctx, id, expect, func(cat *domain.Category) error {
		apply(cat)
		cat.Slug = strings.TrimSpace(strings.ToLower(cat.Slug))
		return checkCategory(cat)
	}, func(list []domain.Category, idx int) error {
		for i := range list {
			if i != idx && list[i].Slug == list[idx].Slug {
				return &domain.DuplicateError{Entity: "category", Field: "slug", Value: list[idx].Slug}
			}
		}
		return nil
	})
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
