package viewstate_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"wecamp/internal/domain"
	"wecamp/internal/notify"
	"wecamp/internal/query"
	"wecamp/internal/viewstate"
)

func fixedFetch(items []domain.Gear, err error) func(context.Context, viewstate.Params) (query.Result[domain.Gear], error) {
	return func(context.Context, viewstate.Params) (query.Result[domain.Gear], error) {
		if err != nil {
			return query.Result[domain.Gear]{}, err
		}
		return query.Result[domain.Gear]{Items: items, Total: len(items)}, nil
	}
}

func TestStoreLoadReady(t *testing.T) {
	g := domain.Gear{Name: "Tent"}
	g.ID = "g1"
	s := viewstate.New(fixedFetch([]domain.Gear{g}, nil))

	if s.Snapshot().State != viewstate.Idle {
		t.Fatal("fresh store should be idle")
	}

	s.Load(context.Background(), viewstate.Params{Page: 1, PageSize: 10})
	snap := s.Snapshot()
	if snap.State != viewstate.Ready || snap.Total != 1 || len(snap.Items) != 1 {
		t.Fatalf("want ready with one item, got %+v", snap)
	}
	if snap.Pages != 1 {
		t.Fatalf("want 1 page, got %d", snap.Pages)
	}
}

func TestStoreFailedThenRetry(t *testing.T) {
	boom := errors.New("store offline")
	fail := true
	var mu sync.Mutex
	s := viewstate.New(func(context.Context, viewstate.Params) (query.Result[domain.Gear], error) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			return query.Result[domain.Gear]{}, boom
		}
		return query.Result[domain.Gear]{Total: 0, Items: []domain.Gear{}}, nil
	})

	s.Load(context.Background(), viewstate.Params{})
	if snap := s.Snapshot(); snap.State != viewstate.Failed || snap.Err == nil {
		t.Fatalf("want failed with error, got %+v", snap)
	}

	// A failed store stays usable: the next load retries.
	mu.Lock()
	fail = false
	mu.Unlock()
	s.Reload(context.Background())
	if snap := s.Snapshot(); snap.State != viewstate.Ready {
		t.Fatalf("retry should recover, got %v", snap.State)
	}
}

// A slow load finishing after a newer one must not clobber the newer result.
func TestStoreStaleCompletionDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	s := viewstate.New(func(_ context.Context, p viewstate.Params) (query.Result[domain.Gear], error) {
		if p.Page == 1 {
			close(started)
			<-release // first load parks until told otherwise
			return query.Result[domain.Gear]{Total: 111}, nil
		}
		return query.Result[domain.Gear]{Total: 222}, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Load(context.Background(), viewstate.Params{Page: 1})
	}()
	<-started

	// The newer load supersedes the parked one and completes first.
	s.Load(context.Background(), viewstate.Params{Page: 2})
	close(release)
	wg.Wait()

	snap := s.Snapshot()
	if snap.Total != 222 {
		t.Fatalf("stale completion overwrote newer result: total=%d", snap.Total)
	}
	if snap.State != viewstate.Ready {
		t.Fatalf("want ready, got %v", snap.State)
	}
}

func TestStoreWatchReloadsOnSignal(t *testing.T) {
	var mu sync.Mutex
	total := 1
	s := viewstate.New(func(context.Context, viewstate.Params) (query.Result[domain.Gear], error) {
		mu.Lock()
		defer mu.Unlock()
		return query.Result[domain.Gear]{Total: total}, nil
	})
	s.Load(context.Background(), viewstate.Params{})

	bus := notify.NewInProc()
	unsub := s.Watch(bus, "gearUpdated")
	defer unsub()

	mu.Lock()
	total = 5
	mu.Unlock()
	if err := bus.Publish(context.Background(), "gearUpdated"); err != nil {
		t.Fatal(err)
	}

	if snap := s.Snapshot(); snap.Total != 5 {
		t.Fatalf("signal should have reloaded: total=%d", snap.Total)
	}
}
