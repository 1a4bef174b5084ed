package services_test

import (
	"context"
	"testing"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
	"wecamp/internal/repos"
	"wecamp/internal/services"
)

func newContactService() *services.ContactService {
	store := kvstore.NewMemory()
	return &services.ContactService{
		Messages:     repos.NewMessageRepo(store),
		Appointments: repos.NewAppointmentRepo(store),
		Newsletter:   repos.NewNewsletterRepo(store),
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	a, err := svc.BookAppointment(ctx, domain.Appointment{Name: "Sam", Email: "sam@example.com", Date: "2026-09-12"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Status != domain.AppointmentPending {
		t.Fatalf("new appointment should be pending, got %q", a.Status)
	}

	a, err = svc.MoveAppointment(ctx, a.ID, domain.AppointmentConfirmed)
	if err != nil {
		t.Fatal(err)
	}
	a, err = svc.MoveAppointment(ctx, a.ID, domain.AppointmentCompleted)
	if err != nil {
		t.Fatal(err)
	}

	// Completed is terminal.
	if _, err := svc.MoveAppointment(ctx, a.ID, domain.AppointmentCancelled); !domain.IsValidation(err) {
		t.Fatalf("move out of completed: want ValidationError, got %v", err)
	}
}

func TestAppointmentIllegalMove(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	a, err := svc.BookAppointment(ctx, domain.Appointment{Name: "Sam", Email: "sam@example.com", Date: "2026-09-12"})
	if err != nil {
		t.Fatal(err)
	}
	// pending cannot jump straight to completed.
	if _, err := svc.MoveAppointment(ctx, a.ID, domain.AppointmentCompleted); !domain.IsValidation(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	// The record is untouched.
	got, err := svc.Appointments.ByID(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.AppointmentPending {
		t.Fatalf("rejected move changed status to %q", got.Status)
	}
}

func TestMessageMarkRead(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	m, err := svc.SubmitMessage(ctx, domain.Message{Name: "Pat", Email: "pat@example.com", Body: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if m.Status != domain.MessageUnread {
		t.Fatalf("new message should be unread, got %q", m.Status)
	}
	m, err = svc.MarkMessage(ctx, m.ID, domain.MessageRead)
	if err != nil {
		t.Fatal(err)
	}
	if m.Status != domain.MessageRead {
		t.Fatalf("want read, got %q", m.Status)
	}
}

func TestNewsletterSubscribeUnsubscribe(t *testing.T) {
	ctx := context.Background()
	svc := newContactService()

	if _, err := svc.Subscribe(ctx, "camper@example.com"); err != nil {
		t.Fatal(err)
	}
	// Same address, different case: still a duplicate.
	if _, err := svc.Subscribe(ctx, "CAMPER@example.com"); !domain.IsDuplicate(err) {
		t.Fatalf("want DuplicateError, got %v", err)
	}
	if err := svc.Unsubscribe(ctx, "camper@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Unsubscribe(ctx, "camper@example.com"); !domain.IsNotFound(err) {
		t.Fatalf("second unsubscribe: want NotFoundError, got %v", err)
	}
}

func TestReviewModerationFlows(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	reviews := repos.NewReviewRepo(store)

	auto := &services.ReviewService{Reviews: reviews, AutoApprove: true}
	rv, err := auto.Submit(ctx, domain.Review{GearID: "g1", Rating: 5, Comment: "great"})
	if err != nil {
		t.Fatal(err)
	}
	if !rv.IsApproved {
		t.Fatal("auto-approve on: submission should be approved")
	}

	moderated := &services.ReviewService{Reviews: reviews, AutoApprove: false}
	rv2, err := moderated.Submit(ctx, domain.Review{GearID: "g1", Rating: 2, Comment: "meh"})
	if err != nil {
		t.Fatal(err)
	}
	if rv2.IsApproved {
		t.Fatal("auto-approve off: submission should wait for approval")
	}

	// Public listing hides the pending one; admins see both.
	pub, err := moderated.ListForTarget(ctx, "g1", "", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(pub) != 1 {
		t.Fatalf("public list: want 1, got %d", len(pub))
	}
	all, err := moderated.ListForTarget(ctx, "g1", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("admin list: want 2, got %d", len(all))
	}

	// Approval publishes it; helpful only grows.
	if _, err := moderated.Approve(ctx, rv2.ID); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := moderated.MarkHelpful(ctx, rv.ID); err != nil {
			t.Fatal(err)
		}
	}
	got, err := reviews.ByID(ctx, rv.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.HelpfulCount != 3 {
		t.Fatalf("want helpfulCount 3, got %d", got.HelpfulCount)
	}
}
