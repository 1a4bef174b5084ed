package services

import (
	"context"

	"wecamp/internal/domain"
	"wecamp/internal/repos"
)

type ContactService struct {
	Messages     *repos.MessageRepo
	Appointments *repos.AppointmentRepo
	Newsletter   *repos.NewsletterRepo
}

// Legal appointment lifecycle moves. Completed and cancelled are terminal.
var appointmentMoves = map[string][]string{
	domain.AppointmentPending:   {domain.AppointmentConfirmed, domain.AppointmentCancelled},
	domain.AppointmentConfirmed: {domain.AppointmentCompleted, domain.AppointmentCancelled},
}

func (s *ContactService) SubmitMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	return s.Messages.Create(ctx, m)
}

func (s *ContactService) MarkMessage(ctx context.Context, id, status string) (domain.Message, error) {
	return s.Messages.SetStatus(ctx, id, status)
}

func (s *ContactService) BookAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	return s.Appointments.Create(ctx, a)
}

// MoveAppointment validates the lifecycle transition before writing it.
func (s *ContactService) MoveAppointment(ctx context.Context, id, next string) (domain.Appointment, error) {
	cur, err := s.Appointments.ByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, err
	}
	for _, allowed := range appointmentMoves[cur.Status] {
		if next == allowed {
			return s.Appointments.SetStatus(ctx, id, next)
		}
	}
	return domain.Appointment{}, &domain.ValidationError{
		Field:  "status",
		Reason: "cannot move from " + cur.Status + " to " + next,
	}
}

func (s *ContactService) Subscribe(ctx context.Context, email string) (domain.NewsletterSubscription, error) {
	return s.Newsletter.Subscribe(ctx, email)
}

func (s *ContactService) Unsubscribe(ctx context.Context, email string) error {
	return s.Newsletter.Unsubscribe(ctx, email)
}
