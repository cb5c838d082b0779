// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru provides a bounded memo store using the container package.
package lru

import (
	"sync"

	"github.com/luxfi/container"
	"github.com/luxfi/memo"
)

// Store is an LRU-bounded memo table for recursions over domains too large
// to retain fully. Evicting a memoized result is always safe: the evaluator
// recomputes it on the next miss, so only the work bound weakens, never the
// answer.
type Store[K comparable, V any] struct {
	mu       sync.Mutex
	inner    container.Cache[K, V]
	capacity int
	onEvict  func(K, V)
}

// NewStore creates a bounded store holding at most size entries.
func NewStore[K comparable, V any](size int) *Store[K, V] {
	if size <= 0 {
		size = 1
	}
	return &Store[K, V]{
		inner:    container.NewLRUCache[K, V](size),
		capacity: size,
	}
}

// NewStoreWithOnEvict creates a bounded store with an eviction callback.
func NewStoreWithOnEvict[K comparable, V any](size int, onEvict func(K, V)) *Store[K, V] {
	if size <= 0 {
		size = 1
	}
	return &Store[K, V]{
		inner:    container.NewLRUCacheWithOnEvict[K, V](size, onEvict),
		capacity: size,
		onEvict:  onEvict,
	}
}

// Put inserts a result, evicting the least recently used entry at capacity.
func (s *Store[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Put(key, value)
}

// Get retrieves a result and marks it most recently used.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(key)
}

// Evict removes a key from the store.
func (s *Store[K, V]) Evict(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Delete(key)
}

// Flush removes all entries.
func (s *Store[K, V]) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onEvict != nil {
		s.inner = container.NewLRUCacheWithOnEvict[K, V](s.capacity, s.onEvict)
	} else {
		s.inner = container.NewLRUCache[K, V](s.capacity)
	}
}

// Len returns the number of entries currently held.
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

// PortionFilled returns the fraction of capacity in use (0 --> 1).
func (s *Store[K, V]) PortionFilled() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity == 0 {
		return 0
	}
	return float64(s.inner.Len()) / float64(s.capacity)
}

// Interface compliance
var _ memo.Store[struct{}, struct{}] = (*Store[struct{}, struct{}])(nil)
