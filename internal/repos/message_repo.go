package repos

import (
	"context"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type MessageRepo struct {
	c collection[domain.Message, *domain.Message]
}

func NewMessageRepo(s kvstore.Store) *MessageRepo {
	return &MessageRepo{c: collection[domain.Message, *domain.Message]{
		store: s, key: KeyMessages, entity: "message",
	}}
}

func (r *MessageRepo) All(ctx context.Context) ([]domain.Message, error) {
	return r.c.all(ctx)
}

func (r *MessageRepo) ByID(ctx context.Context, id string) (domain.Message, error) {
	return r.c.byID(ctx, id)
}

func (r *MessageRepo) Create(ctx context.Context, m domain.Message) (domain.Message, error) {
	if strings.TrimSpace(m.Body) == "" {
		return domain.Message{}, &domain.ValidationError{Field: "body", Reason: "required"}
	}
	if strings.TrimSpace(m.Email) == "" {
		return domain.Message{}, &domain.ValidationError{Field: "email", Reason: "required"}
	}
	m.Status = domain.MessageUnread
	return r.c.insert(ctx, m, nil)
}

func (r *MessageRepo) SetStatus(ctx context.Context, id, status string) (domain.Message, error) {
	if status != domain.MessageRead && status != domain.MessageUnread {
		return domain.Message{}, &domain.ValidationError{Field: "status", Reason: "must be read or unread"}
	}
	return r.c.update(ctx, id, 0, func(m *domain.Message) error {
		m.Status = status
		return nil
	}, nil)
}

func (r *MessageRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *MessageRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(ctx)
}
