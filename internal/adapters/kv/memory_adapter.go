package kv

import (
	"context"
	"sync"

	"github.com/scoopworks/creamery-backend/internal/domain/providers"
)

// MemoryAdapter is an in-process KeyValueProvider for tests and for running
// without Redis. Expirations are ignored; entries live until deleted.
type MemoryAdapter struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryAdapter creates an empty in-memory key-value store.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{data: make(map[string][]byte)}
}

// Get retrieves a value
func (a *MemoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	value, ok := a.data[key]
	if !ok {
		return nil, providers.ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a value; the expiration is ignored
func (a *MemoryAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	a.data[key] = stored
	return nil
}

// Delete removes a value
func (a *MemoryAdapter) Delete(ctx context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.data, key)
	return nil
}
