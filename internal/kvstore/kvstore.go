// Package kvstore is the flat record store: one JSON-encoded list of records
// per logical key. Repositories own keys exclusively; the store knows nothing
// about entity shapes.
package kvstore

import (
	"context"
	"log"
	"sync"

	"wecamp/internal/notify"
)

type Store interface {
	// Load returns the raw slot contents; ok is false when the key has
	// never been written.
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Save overwrites the slot. A rejected write surfaces as
	// *domain.PersistenceError.
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Memory is an ephemeral Store for tests and demo mode.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.slots[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (m *Memory) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.slots[key] = cp
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// Notifying publishes the key's change topic after every successful Save.
// Publish failures are logged, not returned: the write already durably
// happened and subscribers only lose one refresh hint.
type Notifying struct {
	Store
	Bus notify.Bus
}

func WithNotify(s Store, bus notify.Bus) *Notifying {
	return &Notifying{Store: s, Bus: bus}
}

func (n *Notifying) Save(ctx context.Context, key string, data []byte) error {
	if err := n.Store.Save(ctx, key, data); err != nil {
		return err
	}
	if err := n.Bus.Publish(ctx, notify.TopicFor(key)); err != nil {
		log.Printf("[kvstore] publish %s failed: %v", notify.TopicFor(key), err)
	}
	return nil
}
