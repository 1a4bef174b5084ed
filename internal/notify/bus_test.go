package notify_test

import (
	"context"
	"testing"

	"wecamp/internal/notify"
)

func TestTopicFor(t *testing.T) {
	if got := notify.TopicFor("gear"); got != "gearUpdated" {
		t.Fatalf("want gearUpdated, got %s", got)
	}
}

func TestInProcFanOut(t *testing.T) {
	ctx := context.Background()
	bus := notify.NewInProc()

	var a, b int
	unsubA := bus.Subscribe("gearUpdated", func(string) { a++ })
	unsubB := bus.Subscribe("gearUpdated", func(string) { b++ })
	defer unsubB()

	if err := bus.Publish(ctx, "gearUpdated"); err != nil {
		t.Fatal(err)
	}
	if a != 1 || b != 1 {
		t.Fatalf("both subscribers should fire: a=%d b=%d", a, b)
	}

	// Other topics don't leak in.
	if err := bus.Publish(ctx, "campsitesUpdated"); err != nil {
		t.Fatal(err)
	}
	if a != 1 || b != 1 {
		t.Fatalf("unrelated topic fired handlers: a=%d b=%d", a, b)
	}

	// After unsubscribe only the remaining handler fires.
	unsubA()
	if err := bus.Publish(ctx, "gearUpdated"); err != nil {
		t.Fatal(err)
	}
	if a != 1 || b != 2 {
		t.Fatalf("unsubscribed handler still firing: a=%d b=%d", a, b)
	}
}

// Signals are at-least-once; an idempotent handler converges to the same
// state no matter how many times the topic fires.
func TestInProcRepeatedSignals(t *testing.T) {
	ctx := context.Background()
	bus := notify.NewInProc()

	state := "stale"
	unsub := bus.Subscribe("gearUpdated", func(string) { state = "fresh" })
	defer unsub()

	for i := 0; i < 3; i++ {
		if err := bus.Publish(ctx, "gearUpdated"); err != nil {
			t.Fatal(err)
		}
	}
	if state != "fresh" {
		t.Fatalf("want fresh, got %s", state)
	}
}

func TestInProcCloseDropsSubscribers(t *testing.T) {
	ctx := context.Background()
	bus := notify.NewInProc()

	fired := false
	bus.Subscribe("gearUpdated", func(string) { fired = true })
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
	if err := bus.Publish(ctx, "gearUpdated"); err != nil {
		t.Fatal(err)
	}
	if fired {
		t.Fatal("handler fired after Close")
	}
}
