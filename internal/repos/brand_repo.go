package repos

import (
	"context"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type BrandRepo struct {
	c collection[domain.Brand, *domain.Brand]
}

func NewBrandRepo(s kvstore.Store) *BrandRepo {
	return &BrandRepo{c: collection[domain.Brand, *domain.Brand]{
		store: s, key: KeyBrands, entity: "brand", seed: seedBrands,
	}}
}

func (r *BrandRepo) All(ctx context.Context) ([]domain.Brand, error) {
	return r.c.all(ctx)
}

func (r *BrandRepo) ByID(ctx context.Context, id string) (domain.Brand, error) {
	return r.c.byID(ctx, id)
}

// Create enforces case-insensitive name uniqueness.
func (r *BrandRepo) Create(ctx context.Context, b domain.Brand) (domain.Brand, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return domain.Brand{}, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	return r.c.insert(ctx, b, func(existing domain.Brand) *domain.DuplicateError {
		if strings.EqualFold(existing.Name, b.Name) {
			return &domain.DuplicateError{Entity: "brand", Field: "name", Value: b.Name}
		}
		return nil
	})
}

func (r *BrandRepo) Rename(ctx context.Context, id string, expect int, name string) (domain.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Brand{}, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	return r.c.update(ctx, id, expect, func(b *domain.Brand) error {
		b.Name = name
		return nil
	}, func(list []domain.Brand, idx int) error {
		for i := range list {
			if i != idx && strings.EqualFold(list[i].Name, name) {
				return &domain.DuplicateError{Entity: "brand", Field: "name", Value: name}
			}
		}
		return nil
	})
}

func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *BrandRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(ctx)
}
