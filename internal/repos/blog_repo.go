package repos

import (
	"context"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type BlogRepo struct {
	c collection[domain.BlogPost, *domain.BlogPost]
}

func NewBlogRepo(s kvstore.Store) *BlogRepo {
	return &BlogRepo{c: collection[domain.BlogPost, *domain.BlogPost]{
		store: s, key: KeyBlogPosts, entity: "blog post",
	}}
}

func checkBlogPost(p *domain.BlogPost) error {
	if strings.TrimSpace(p.Title) == "" {
		return &domain.ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(p.Slug) == "" {
		return &domain.ValidationError{Field: "slug", Reason: "required"}
	}
	return nil
}

func (r *BlogRepo) All(ctx context.Context) ([]domain.BlogPost, error) {
	return r.c.all(ctx)
}

func (r *BlogRepo) ByID(ctx context.Context, id string) (domain.BlogPost, error) {
	return r.c.byID(ctx, id)
}

func (r *BlogRepo) BySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	list, err := r.c.all(ctx)
	if err != nil {
		return domain.BlogPost{}, err
	}
	for _, p := range list {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.BlogPost{}, &domain.NotFoundError{Entity: "blog post", ID: slug}
}

func (r *BlogRepo) Create(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error) {
	p.Slug = strings.TrimSpace(strings.ToLower(p.Slug))
	if err := checkBlogPost(&p); err != nil {
		return domain.BlogPost{}, err
	}
	return r.c.insert(ctx, p, func(existing domain.BlogPost) *domain.DuplicateError {
		if existing.Slug == p.Slug {
			return &domain.DuplicateError{Entity: "blog post", Field: "slug", Value: p.Slug}
		}
		return nil
	})
}

func (r *BlogRepo) Update(ctx context.Context, id string, expect int, apply func(*domain.BlogPost)) (domain.BlogPost, error) {
	return r.c.update(ctx, id, expect, func(p *domain.BlogPost) error {
		apply(p)
		p.Slug = strings.TrimSpace(strings.ToLower(p.Slug))
		return checkBlogPost(p)
	}, func(list []domain.BlogPost, idx int) error {
		for i := range list {
			if i != idx && list[i].Slug == list[idx].Slug {
				return &domain.DuplicateError{Entity: "blog post", Field: "slug", Value: list[idx].Slug}
			}
		}
		return nil
	})
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *BlogRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(ctx)
}
