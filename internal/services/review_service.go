package services

import (
	"context"

	"wecamp/internal/domain"
	"wecamp/internal/repos"
)

type ReviewService struct {
	Reviews *repos.ReviewRepo

	// AutoApprove publishes submissions immediately (the historical
	// standalone behavior); when false they wait for admin approval.
	AutoApprove bool
}

func (s *ReviewService) Submit(ctx context.Context, rv domain.Review) (domain.Review, error) {
	rv.IsApproved = s.AutoApprove
	return s.Reviews.Create(ctx, rv)
}

func (s *ReviewService) Approve(ctx context.Context, id string) (domain.Review, error) {
	return s.Reviews.Update(ctx, id, 0, func(rv *domain.Review) {
		rv.IsApproved = true
	})
}

// MarkHelpful bumps the counter; it only ever grows.
func (s *ReviewService) MarkHelpful(ctx context.Context, id string) (domain.Review, error) {
	return s.Reviews.Update(ctx, id, 0, func(rv *domain.Review) {
		rv.HelpfulCount++
	})
}

// ListForTarget returns a target's reviews, hiding unapproved ones from
// public readers.
func (s *ReviewService) ListForTarget(ctx context.Context, gearID, campsiteID string, includeUnapproved bool) ([]domain.Review, error) {
	list, err := s.Reviews.ForTarget(ctx, gearID, campsiteID)
	if err != nil {
		return nil, err
	}
	if includeUnapproved {
		return list, nil
	}
	out := make([]domain.Review, 0, len(list))
	for _, rv := range list {
		if rv.IsApproved {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return s.Reviews.Delete(ctx, id)
}
