// Package viewstate holds per-page catalog view state: the active filters,
// the current page, and the load lifecycle around one fetch function.
package viewstate

import (
	"context"
	"sync"

	"wecamp/internal/notify"
	"wecamp/internal/query"
)

type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Params is one catalog request: filters plus sort plus page window.
type Params struct {
	Filters  query.Filters
	Sort     query.Sort
	Page     int
	PageSize int
}

// View is an immutable snapshot of the store.
type View[T any] struct {
	State State
	Items []T
	Total int
	Pages int
	Param Params
	Err   error
}

// Store runs fetches and keeps the latest outcome. Loads are not cancelled
// when superseded; instead every load carries a generation and a completion
// whose generation is stale is discarded, so the newest request always wins
// regardless of completion order.
type Store[T any] struct {
	mu    sync.Mutex
	fetch func(ctx context.Context, p Params) (query.Result[T], error)

	state State
	items []T
	total int
	param Params
	err   error
	gen   uint64
}

func New[T any](fetch func(ctx context.Context, p Params) (query.Result[T], error)) *Store[T] {
	return &Store[T]{fetch: fetch}
}

// Load transitions to Loading, runs the fetch, and lands in Ready or
// Failed. A Failed store stays queryable: calling Load again retries.
func (s *Store[T]) Load(ctx context.Context, p Params) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = Loading
	s.param = p
	s.mu.Unlock()

	res, err := s.fetch(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer load superseded this one.
		return
	}
	if err != nil {
		s.state = Failed
		s.err = err
		return
	}
	s.state = Ready
	s.items = res.Items
	s.total = res.Total
	s.err = nil
}

// Reload re-runs the last parameters. Safe to call any number of times; a
// full reload is always idempotent.
func (s *Store[T]) Reload(ctx context.Context) {
	s.mu.Lock()
	p := s.param
	s.mu.Unlock()
	s.Load(ctx, p)
}

func (s *Store[T]) Snapshot() View[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	return View[T]{
		State: s.state,
		Items: items,
		Total: s.total,
		Pages: query.Pages(s.total, s.param.PageSize),
		Param: s.param,
		Err:   s.err,
	}
}

// Watch reloads the view whenever the topic signals a change elsewhere.
// The returned func unsubscribes; callers must invoke it.
func (s *Store[T]) Watch(bus notify.Bus, topic string) func() {
	return bus.Subscribe(topic, func(string) {
		s.Reload(context.Background())
	})
}
