package notify

import (
	"context"
	"sync"
)

// Handler receives the topic name only; change signals carry no payload, so
// handlers reload from the store. Delivery is at-least-once and unordered
// across topics, so handlers must be idempotent.
type Handler func(topic string)

// Bus fans a change signal out to every subscriber of a topic.
// Unsubscribe is explicit: callers must invoke the returned func or the
// handler reference leaks.
type Bus interface {
	Publish(ctx context.Context, topic string) error
	Subscribe(topic string, h Handler) (unsubscribe func())
	Close() error
}

// TopicFor maps a storage slot key to its change topic.
func TopicFor(key string) string { return key + "Updated" }

// InProc delivers signals to subscribers within one process.
type InProc struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
}

func NewInProc() *InProc {
	return &InProc{subs: make(map[string]map[int]Handler)}
}

func (b *InProc) Publish(_ context.Context, topic string) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(topic)
	}
	return nil
}

func (b *InProc) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
		if len(b.subs[topic]) == 0 {
			delete(b.subs, topic)
		}
	}
}

func (b *InProc) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[string]map[int]Handler)
	return nil
}
