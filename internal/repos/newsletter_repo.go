package repos

import (
	"context"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type NewsletterRepo struct {
	c collection[domain.NewsletterSubscription, *domain.NewsletterSubscription]
}

func NewNewsletterRepo(s kvstore.Store) *NewsletterRepo {
	return &NewsletterRepo{c: collection[domain.NewsletterSubscription, *domain.NewsletterSubscription]{
		store: s, key: KeyNewsletter, entity: "subscription",
	}}
}

func (r *NewsletterRepo) All(ctx context.Context) ([]domain.NewsletterSubscription, error) {
	return r.c.all(ctx)
}

func (r *NewsletterRepo) Subscribe(ctx context.Context, email string) (domain.NewsletterSubscription, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.NewsletterSubscription{}, &domain.ValidationError{Field: "email", Reason: "required"}
	}
	sub := domain.NewsletterSubscription{Email: email}
	return r.c.insert(ctx, sub, func(existing domain.NewsletterSubscription) *domain.DuplicateError {
		if strings.EqualFold(existing.Email, email) {
			return &domain.DuplicateError{Entity: "subscription", Field: "email", Value: email}
		}
		return nil
	})
}

func (r *NewsletterRepo) Unsubscribe(ctx context.Context, email string) error {
	list, err := r.c.all(ctx)
	if err != nil {
		return err
	}
	for _, sub := range list {
		if strings.EqualFold(sub.Email, email) {
			return r.c.remove(ctx, sub.ID)
		}
	}
	return &domain.NotFoundError{Entity: "subscription", ID: email}
}

func (r *NewsletterRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(ctx)
}
