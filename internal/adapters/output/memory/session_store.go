package memory

import (
	"context"
	"sync"

	"meal-order-client/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory session storage.
// Uses sync.Map for thread-safe concurrent access. Values are lost when the
// process exits, so a restart always starts anonymous.
type MemorySessionStore struct {
	values sync.Map
}

// NewMemorySessionStore creates a new, empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

// Get returns the value stored under key and whether it was set
func (m *MemorySessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, exists := m.values.Load(key)
	if !exists {
		return "", false, nil
	}

	s, ok := value.(string)
	if !ok {
		// If data is malformed, delete and report it as unset
		m.values.Delete(key)
		return "", false, nil
	}
	return s, true, nil
}

// Set stores value under key, replacing any previous value
func (m *MemorySessionStore) Set(ctx context.Context, key, value string) error {
	m.values.Store(key, value)
	return nil
}

// Clear removes every key. Clearing an empty store is not an error.
func (m *MemorySessionStore) Clear(ctx context.Context) error {
	m.values.Range(func(key, _ interface{}) bool {
		m.values.Delete(key)
		return true
	})
	return nil
}
