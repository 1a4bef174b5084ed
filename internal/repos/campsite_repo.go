package repos

import (
	"context"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type CampsiteRepo struct {
	c collection[domain.Campsite, *domain.Campsite]
}

func NewCampsiteRepo(s kvstore.Store) *CampsiteRepo {
	return &CampsiteRepo{c: collection[domain.Campsite, *domain.Campsite]{
		store: s, key: KeyCampsites, entity: "campsite", seed: seedCampsites,
	}}
}

func checkCampsite(cs *domain.Campsite) error {
	if strings.TrimSpace(cs.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(cs.Location) == "" {
		return &domain.ValidationError{Field: "location", Reason: "required"}
	}
	if cs.PricePerNight < 0 {
		return &domain.ValidationError{Field: "pricePerNight", Reason: "must not be negative"}
	}
	if cs.Capacity < 0 {
		return &domain.ValidationError{Field: "capacity", Reason: "must not be negative"}
	}
	if cs.Rating < 0 || cs.Rating > 5 {
		return &domain.ValidationError{Field: "rating", Reason: "must be between 0 and 5"}
	}
	return nil
}

func (r *CampsiteRepo) All(ctx context.Context) ([]domain.Campsite, error) {
	return r.c.all(ctx)
}

func (r *CampsiteRepo) ByID(ctx context.Context, id string) (domain.Campsite, error) {
	return r.c.byID(ctx, id)
}

func (r *CampsiteRepo) Create(ctx context.Context, cs domain.Campsite) (domain.Campsite, error) {
	if err := checkCampsite(&cs); err != nil {
		return domain.Campsite{}, err
	}
	return r.c.insert(ctx, cs, nil)
}

func (r *CampsiteRepo) Update(ctx context.Context, id string, expect int, apply func(*domain.Campsite)) (domain.Campsite, error) {
	return r.c.update(ctx, id, expect, func(cs *domain.Campsite) error {
		apply(cs)
		return checkCampsite(cs)
	}, nil)
}

func (r *CampsiteRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *CampsiteRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(ctx)
}
