package repos

import (
	"context"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type GearRepo struct {
	c collection[domain.Gear, *domain.Gear]
}

func NewGearRepo(s kvstore.Store) *GearRepo {
	return &GearRepo{c: collection[domain.Gear, *domain.Gear]{
		store: s, key: KeyGear, entity: "gear",
	}}
}

func validGearStatus(s string) bool {
	switch s {
	case domain.StatusForSale, domain.StatusSold, domain.StatusWaiting,
		domain.StatusArrived, domain.StatusShipped:
		return true
	}
	return false
}

func checkGear(g *domain.Gear) error {
	if strings.TrimSpace(g.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if g.PricePerDay < 0 {
		return &domain.ValidationError{Field: "pricePerDay", Reason: "must not be negative"}
	}
	if g.Rating < 0 || g.Rating > 5 {
		return &domain.ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	if !validGearStatus(g.Status) {
		return &domain.ValidationError{Field: "status", Reason: "unknown status " + g.Status}
	}
	return nil
}

func (r *GearRepo) All(ctx context.Context) ([]domain.Gear, error) {
	return r.c.all(ctx)
}

func (r *GearRepo) ByID(ctx context.Context, id string) (domain.Gear, error) {
	return r.c.byID(ctx, id)
}

func (r *GearRepo) Create(ctx context.Context, g domain.Gear) (domain.Gear, error) {
	if g.Status == "" {
		g.Status = domain.StatusForSale
		g.Available = true
	}
	if err := checkGear(&g); err != nil {
		return domain.Gear{}, err
	}
	return r.c.insert(ctx, g, nil)
}

// Update applies a partial mutation. expect > 0 enforces the caller's view
// of the record version and fails stale writers with ConflictError.
func (r *GearRepo) Update(ctx context.Context, id string, expect int, apply func(*domain.Gear)) (domain.Gear, error) {
	return r.c.update(ctx, id, expect, func(g *domain.Gear) error {
		apply(g)
		return checkGear(g)
	}, nil)
}

func (r *GearRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *GearRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(ctx)
}
