package repos

import (
	"context"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type UserRepo struct {
	c collection[domain.User, *domain.User]
}

func NewUserRepo(s kvstore.Store) *UserRepo {
	return &UserRepo{c: collection[domain.User, *domain.User]{
		store: s, key: KeyUsers, entity: "user", seed: seedUsers,
	}}
}

func (r *UserRepo) ByEmail(ctx context.Context, email string) (domain.User, error) {
	list, err := r.c.all(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range list {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return domain.User{}, &domain.NotFoundError{Entity: "user", ID: email}
}

func (r *UserRepo) ByID(ctx context.Context, id string) (domain.User, error) {
	return r.c.byID(ctx, id)
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = strings.TrimSpace(u.Email)
	if u.Email == "" {
		return domain.User{}, &domain.ValidationError{Field: "email", Reason: "required"}
	}
	return r.c.insert(ctx, u, func(existing domain.User) *domain.DuplicateError {
		if strings.EqualFold(existing.Email, u.Email) {
			return &domain.DuplicateError{Entity: "user", Field: "email", Value: u.Email}
		}
		return nil
	})
}
