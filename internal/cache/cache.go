// Package cache provides the in-memory memoization used by the
// service layer to avoid re-reading the ledger on every view change.
package cache

import "sync"

// Cache is a generic in-process cache with an explicit invalidate
// operation; it is injected rather than held as ambient global state.
type Cache[T any] interface {
	// Get retrieves a value from the cache.
	Get(key string) (T, bool)

	// Set stores a value in the cache.
	Set(key string, value T)

	// Delete removes a key from the cache.
	Delete(key string)

	// Invalidate drops every entry.
	Invalidate()

	// Size returns the current number of items in the cache.
	Size() int
}

// Memo is a mutex-guarded map store. Values live until Delete or
// Invalidate; there is no TTL because the cached ledger only goes
// stale through an explicit rebuild, which invalidates it.
type Memo[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewMemo creates an empty memo store.
func NewMemo[T any]() *Memo[T] {
	return &Memo[T]{items: make(map[string]T)}
}

func (m *Memo[T]) Get(key string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *Memo[T]) Set(key string, value T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

func (m *Memo[T]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
}

func (m *Memo[T]) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]T)
}

func (m *Memo[T]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
