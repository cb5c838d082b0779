// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package memo provides memoized evaluation of pure recursive functions.
package memo

// Store acts as the table backing a memoized evaluator: a key value store
// mapping argument tuples to previously computed results.
type Store[K comparable, V any] interface {
	// Put inserts an entry into the store.
	Put(key K, value V)

	// Get returns the entry with the key, if it exists.
	Get(key K) (V, bool)

	// Evict removes the specified entry from the store.
	Evict(key K)

	// Flush removes all entries from the store.
	Flush()

	// Len returns the number of entries in the store.
	Len() int
}

// Seeder is implemented by stores that support bulk pre-seeding of base
// cases before evaluation starts.
type Seeder[K comparable, V any] interface {
	// Seed inserts every entry of the given table.
	Seed(entries map[K]V)
}
