package repos

import (
	"context"
	"regexp"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

var reHex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type ColorRepo struct {
	c collection[domain.Color, *domain.Color]
}

func NewColorRepo(s kvstore.Store) *ColorRepo {
	return &ColorRepo{c: collection[domain.Color, *domain.Color]{
		store: s, key: KeyColors, entity: "color", seed: seedColors,
	}}
}

func checkColor(col *domain.Color) error {
	if strings.TrimSpace(col.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if col.HexCode != "" && !reHex.MatchString(col.HexCode) {
		return &domain.ValidationError{Field: "hexCode", Reason: "must look like #RRGGBB"}
	}
	return nil
}

func (r *ColorRepo) All(ctx context.Context) ([]domain.Color, error) {
	return r.c.all(ctx)
}

func (r *ColorRepo) ByID(ctx context.Context, id string) (domain.Color, error) {
	return r.c.byID(ctx, id)
}

func (r *ColorRepo) Create(ctx context.Context, col domain.Color) (domain.Color, error) {
	col.Name = strings.TrimSpace(col.Name)
	if err := checkColor(&col); err != nil {
		return domain.Color{}, err
	}
	return r.c.insert(ctx, col, func(existing domain.Color) *domain.DuplicateError {
		if strings.EqualFold(existing.Name, col.Name) {
			return &domain.DuplicateError{Entity: "color", Field: "name", Value: col.Name}
		}
		return nil
	})
}

func (r *ColorRepo) Update(ctx context.Context, id string, expect int, apply func(*domain.Color)) (domain.Color, error) {
	return r.c.update(ctx, id, expect, func(col *domain.Color) error {
		apply(col)
		return checkColor(col)
	}, func(list []domain.Color, idx int) error {
		for i := range list {
			if i != idx && strings.EqualFold(list[i].Name, list[idx].Name) {
				return &domain.DuplicateError{Entity: "color", Field: "name", Value: list[idx].Name}
			}
		}
		return nil
	})
}

func (r *ColorRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
