package kv

import (
	"context"
	"sync"
)

// memoryKV is a process-local backend used by tests and single-process
// deployments. A single mutex makes SetMulti atomic with respect to readers.
type memoryKV struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemory() KV {
	return &memoryKV{
		blobs: map[string][]byte{},
	}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	out := make([]byte, len(blob))
	copy(out, blob)

	return out, nil
}

func (m *memoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = clone(value)

	return nil
}

func (m *memoryKV) SetMulti(_ context.Context, entries map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, value := range entries {
		m.blobs[key] = clone(value)
	}

	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, key)

	return nil
}

func clone(value []byte) []byte {
	out := make([]byte, len(value))
	copy(out, value)

	return out
}
