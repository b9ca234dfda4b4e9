package snapshot

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no snapshot exists for an id.
var ErrNotFound = errors.New("snapshot not found")

// Store persists session snapshots.
type Store interface {
	// Save creates or replaces the snapshot of id.
	Save(ctx context.Context, id string, data []byte) error
	// Load returns the snapshot of id or ErrNotFound.
	Load(ctx context.Context, id string) ([]byte, error)
	// Delete removes the snapshot of id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// Memory is an in-process Store.
type Memory struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) Save(_ context.Context, id string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	m.items[id] = buf
	m.mu.Unlock()
	return nil
}

func (m *Memory) Load(_ context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	data, ok := m.items[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored snapshots.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
