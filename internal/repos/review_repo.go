package repos

import (
	"context"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type ReviewRepo struct {
	c collection[domain.Review, *domain.Review]
}

func NewReviewRepo(s kvstore.Store) *ReviewRepo {
	return &ReviewRepo{c: collection[domain.Review, *domain.Review]{
		store: s, key: KeyReviews, entity: "review",
	}}
}

func checkReview(rv *domain.Review) error {
	hasGear := rv.GearID != ""
	hasSite := rv.CampsiteID != ""
	if hasGear == hasSite {
		return &domain.ValidationError{Field: "target", Reason: "exactly one of gearId or campsiteId required"}
	}
	if rv.Rating < 1 || rv.Rating > 5 {
		return &domain.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	return nil
}

func (r *ReviewRepo) All(ctx context.Context) ([]domain.Review, error) {
	return r.c.all(ctx)
}

func (r *ReviewRepo) ByID(ctx context.Context, id string) (domain.Review, error) {
	return r.c.byID(ctx, id)
}

// ForTarget lists reviews for one gear item or campsite. The target record
// itself may no longer exist; that is not checked here.
func (r *ReviewRepo) ForTarget(ctx context.Context, gearID, campsiteID string) ([]domain.Review, error) {
	list, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(list))
	for _, rv := range list {
		if gearID != "" && rv.GearID != gearID {
			continue
		}
		if campsiteID != "" && rv.CampsiteID != campsiteID {
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

func (r *ReviewRepo) Create(ctx context.Context, rv domain.Review) (domain.Review, error) {
	if err := checkReview(&rv); err != nil {
		return domain.Review{}, err
	}
	rv.HelpfulCount = 0
	return r.c.insert(ctx, rv, nil)
}

func (r *ReviewRepo) Update(ctx context.Context, id string, expect int, apply func(*domain.Review)) (domain.Review, error) {
	return r.c.update(ctx, id, expect, func(rv *domain.Review) error {
		apply(rv)
		return checkReview(rv)
	}, nil)
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *ReviewRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(ctx)
}
