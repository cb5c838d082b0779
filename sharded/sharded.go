// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sharded provides a string-keyed memo store split across shards to
// reduce lock contention, with tag-isolated views for sharing one table
// between independent functions.
package sharded

import (
	"sync"
	"sync/atomic"

	"github.com/spaolacci/murmur3"

	"github.com/luxfi/memo"
)

const (
	numShards = 256
	shardMask = numShards - 1
)

// Stats contains store performance counters.
type Stats struct {
	EntriesCount uint64
	GetCalls     uint64
	PutCalls     uint64
	Misses       uint64
}

// Store is a sharded memo table keyed by strings. Shard selection hashes
// the key with murmur3, so keys of any shape spread evenly.
type Store[V any] struct {
	shards   [numShards]*shard[V]
	getCalls uint64
	putCalls uint64
	misses   uint64
}

type shard[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// New creates an empty sharded store.
func New[V any]() *Store[V] {
	s := &Store[V]{}
	for i := range s.shards {
		s.shards[i] = &shard[V]{items: make(map[string]V)}
	}
	return s
}

func (s *Store[V]) shard(key string) *shard[V] {
	h := murmur3.Sum32([]byte(key))
	return s.shards[h&shardMask]
}

// Put inserts or replaces an entry.
func (s *Store[V]) Put(key string, value V) {
	atomic.AddUint64(&s.putCalls, 1)
	sh := s.shard(key)
	sh.mu.Lock()
	sh.items[key] = value
	sh.mu.Unlock()
}

// Get returns the entry with the key, if it exists.
func (s *Store[V]) Get(key string) (V, bool) {
	atomic.AddUint64(&s.getCalls, 1)
	sh := s.shard(key)
	sh.mu.RLock()
	val, ok := sh.items[key]
	sh.mu.RUnlock()
	if !ok {
		atomic.AddUint64(&s.misses, 1)
	}
	return val, ok
}

// Evict removes a key from the store.
func (s *Store[V]) Evict(key string) {
	sh := s.shard(key)
	sh.mu.Lock()
	delete(sh.items, key)
	sh.mu.Unlock()
}

// Flush removes all entries from every shard.
func (s *Store[V]) Flush() {
	for _, sh := range s.shards {
		sh.mu.Lock()
		sh.items = make(map[string]V)
		sh.mu.Unlock()
	}
}

// Len returns the total number of entries across shards.
func (s *Store[V]) Len() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		total += len(sh.items)
		sh.mu.RUnlock()
	}
	return total
}

// UpdateStats populates the provided stats struct.
func (s *Store[V]) UpdateStats(st *Stats) {
	if st == nil {
		return
	}
	var entries uint64
	for _, sh := range s.shards {
		sh.mu.RLock()
		entries += uint64(len(sh.items))
		sh.mu.RUnlock()
	}
	st.EntriesCount = entries
	st.GetCalls = atomic.LoadUint64(&s.getCalls)
	st.PutCalls = atomic.LoadUint64(&s.putCalls)
	st.Misses = atomic.LoadUint64(&s.misses)
}

// View returns a store scoped to the given tag. Views over the same Store
// share its shards but cannot observe each other's entries, so unrelated
// memoized functions can safely pool one table.
func (s *Store[V]) View(tag string) *View[V] {
	return &View[V]{store: s, prefix: tag + "\x00"}
}

// View is a tag-prefixed window onto a shared Store.
type View[V any] struct {
	store  *Store[V]
	prefix string
}

// Put inserts an entry under the view's tag.
func (v *View[V]) Put(key string, value V) {
	v.store.Put(v.prefix+key, value)
}

// Get returns the tagged entry with the key, if it exists.
func (v *View[V]) Get(key string) (V, bool) {
	return v.store.Get(v.prefix + key)
}

// Evict removes the tagged key.
func (v *View[V]) Evict(key string) {
	v.store.Evict(v.prefix + key)
}

// Flush removes every entry under the view's tag, leaving other tags alone.
func (v *View[V]) Flush() {
	for _, sh := range v.store.shards {
		sh.mu.Lock()
		for k := range sh.items {
			if len(k) >= len(v.prefix) && k[:len(v.prefix)] == v.prefix {
				delete(sh.items, k)
			}
		}
		sh.mu.Unlock()
	}
}

// Len returns the number of entries under the view's tag.
func (v *View[V]) Len() int {
	total := 0
	for _, sh := range v.store.shards {
		sh.mu.RLock()
		for k := range sh.items {
			if len(k) >= len(v.prefix) && k[:len(v.prefix)] == v.prefix {
				total++
			}
		}
		sh.mu.RUnlock()
	}
	return total
}

var (
	_ memo.Store[string, struct{}] = (*Store[struct{}])(nil)
	_ memo.Store[string, struct{}] = (*View[struct{}])(nil)
)
