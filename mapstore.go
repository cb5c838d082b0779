// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"sync"
)

var (
	_ Store[struct{}, struct{}]  = (*MapStore[struct{}, struct{}])(nil)
	_ Seeder[struct{}, struct{}] = (*MapStore[struct{}, struct{}])(nil)
)

// MapStore is the default memo table: an unbounded map guarded by a
// read-write lock. Entries are never evicted on the store's own initiative,
// so under single-writer use every key transitions absent to present at
// most once.
type MapStore[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewMapStore creates an empty MapStore.
func NewMapStore[K comparable, V any]() *MapStore[K, V] {
	return &MapStore[K, V]{
		items: make(map[K]V),
	}
}

// Put inserts or replaces an entry in the store.
func (s *MapStore[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
}

// Get returns the entry with the key, if it exists.
func (s *MapStore[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.items[key]
	return val, ok
}

// Evict removes the specified entry from the store.
func (s *MapStore[K, V]) Evict(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// Flush removes all entries from the store.
func (s *MapStore[K, V]) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[K]V)
}

// Len returns the number of entries in the store.
func (s *MapStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Seed inserts every entry of the given table.
func (s *MapStore[K, V]) Seed(entries map[K]V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range entries {
		s.items[k] = v
	}
}
