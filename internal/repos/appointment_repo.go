package repos

import (
	"context"
	"strings"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

type AppointmentRepo struct {
	c collection[domain.Appointment, *domain.Appointment]
}

func NewAppointmentRepo(s kvstore.Store) *AppointmentRepo {
	return &AppointmentRepo{c: collection[domain.Appointment, *domain.Appointment]{
		store: s, key: KeyAppointments, entity: "appointment",
	}}
}

func (r *AppointmentRepo) All(ctx context.Context) ([]domain.Appointment, error) {
	return r.c.all(ctx)
}

func (r *AppointmentRepo) ByID(ctx context.Context, id string) (domain.Appointment, error) {
	return r.c.byID(ctx, id)
}

func (r *AppointmentRepo) Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	if strings.TrimSpace(a.Name) == "" {
		return domain.Appointment{}, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if strings.TrimSpace(a.Date) == "" {
		return domain.Appointment{}, &domain.ValidationError{Field: "date", Reason: "required"}
	}
	a.Status = domain.AppointmentPending
	return r.c.insert(ctx, a, nil)
}

// SetStatus writes the new lifecycle state; transition legality is the
// contact service's call, not the repository's.
func (r *AppointmentRepo) SetStatus(ctx context.Context, id, status string) (domain.Appointment, error) {
	return r.c.update(ctx, id, 0, func(a *domain.Appointment) error {
		a.Status = status
		return nil
	}, nil)
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *AppointmentRepo) Count(ctx context.Context) (int, error) {
	return r.c.count(ctx)
}
