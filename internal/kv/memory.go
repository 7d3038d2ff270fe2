package kv

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests. Failures and slow writes can
// be injected through its exported fields, which must be set before use.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	sets   map[string]int

	// GetErr, when non-nil, is returned by every Get.
	GetErr error

	// SetErr, when non-nil, is returned by every Set and nothing is stored.
	SetErr error

	// BeforeSet, when non-nil, runs at the start of every Set, outside the
	// lock. Tests use it to hold or reorder writers.
	BeforeSet func(key, value string)
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
		sets:   make(map[string]int),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	if m.BeforeSet != nil {
		m.BeforeSet(key, value)
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.sets[key]++
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// Put stores a value directly, bypassing hooks and injected errors.
func (m *MemoryStore) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Value returns what is currently stored under key.
func (m *MemoryStore) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// SetCount returns how many successful writes key has received.
func (m *MemoryStore) SetCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets[key]
}
