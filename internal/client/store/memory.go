package store

import (
	"context"
	"sync"
)

// MemoryStore is a Store kept in process memory. Values are copied on the
// way in and out.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Slot][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Slot][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, slot Slot) ([]byte, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[slot]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Set(_ context.Context, slot Slot, value []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[slot] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[Slot][]byte)
	return nil
}
