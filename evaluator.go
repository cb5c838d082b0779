// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memo

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Func is a recursive function body in open-recursion form. Recursive calls
// must go through self rather than the enclosing function: self is the
// memoizing path, and routing recursion around it forfeits the speedup.
type Func[K comparable, V any] func(self func(K) (V, error), key K) (V, error)

// Evaluator computes a pure recursive function while ensuring each distinct
// argument is evaluated at most once per store lifetime. Memoization changes
// how fast results arrive, never what they are: Evaluate returns exactly
// what the bare recursion would.
//
// An Evaluator owns its store. Sharing one store between evaluators of
// different functions is only safe through tag-isolated views; see the
// sharded package.
type Evaluator[K comparable, V any] struct {
	store Store[K, V]
	body  Func[K, V]
	log   *zap.Logger
	evals atomic.Uint64
}

// Option configures an Evaluator.
type Option[K comparable, V any] func(*Evaluator[K, V])

// WithStore replaces the default MapStore with a caller-supplied store.
func WithStore[K comparable, V any](s Store[K, V]) Option[K, V] {
	return func(e *Evaluator[K, V]) {
		e.store = s
	}
}

// WithLogger enables debug logging of top-level evaluations.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(e *Evaluator[K, V]) {
		e.log = logger
	}
}

// New creates an Evaluator for the given recursive body.
func New[K comparable, V any](body Func[K, V], opts ...Option[K, V]) *Evaluator[K, V] {
	e := &Evaluator[K, V]{
		store: NewMapStore[K, V](),
		body:  body,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns the function's value at key, consulting the store before
// computing and recording the result afterwards. An error from the body is
// returned as-is and nothing is stored for that key, so a later call
// re-evaluates it.
func (e *Evaluator[K, V]) Evaluate(key K) (V, error) {
	before := e.evals.Load()
	value, err := e.eval(key)
	if e.log != nil {
		if err != nil {
			e.log.Warn("evaluation failed",
				zap.Any("key", key),
				zap.Error(err),
			)
		} else {
			e.log.Debug("evaluated",
				zap.Any("key", key),
				zap.Uint64("bodyEvals", e.evals.Load()-before),
				zap.Int("tableLen", e.store.Len()),
			)
		}
	}
	return value, err
}

func (e *Evaluator[K, V]) eval(key K) (V, error) {
	if value, ok := e.store.Get(key); ok {
		return value, nil
	}

	e.evals.Add(1)
	value, err := e.body(e.eval, key)
	if err != nil {
		var zero V
		return zero, err
	}

	e.store.Put(key, value)
	return value, nil
}

// Seed records base cases ahead of evaluation. Seeded keys count as cached:
// the body is never invoked for them.
func (e *Evaluator[K, V]) Seed(entries map[K]V) {
	if seeder, ok := e.store.(Seeder[K, V]); ok {
		seeder.Seed(entries)
		return
	}
	for k, v := range entries {
		e.store.Put(k, v)
	}
}

// Reset flushes the store and zeroes the evaluation counter, detaching the
// evaluator from all previous top-level computations.
func (e *Evaluator[K, V]) Reset() {
	e.store.Flush()
	e.evals.Store(0)
	if e.log != nil {
		e.log.Debug("reset")
	}
}

// Len returns the number of results currently cached.
func (e *Evaluator[K, V]) Len() int {
	return e.store.Len()
}

// Evals returns how many times the body has run since construction or the
// last Reset. With the default store this equals the number of distinct
// keys ever requested, not the total number of calls.
func (e *Evaluator[K, V]) Evals() uint64 {
	return e.evals.Load()
}

// Unary memoizes a non-recursive pure function of one comparable argument.
// The returned function is safe for concurrent use; two callers racing on
// the same cold key may both invoke fn, and the duplicate result overwrites
// idempotently.
func Unary[K comparable, V any](fn func(K) V) func(K) V {
	store := NewMapStore[K, V]()
	return func(key K) V {
		if value, ok := store.Get(key); ok {
			return value
		}
		value := fn(key)
		store.Put(key, value)
		return value
	}
}
