// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metermemo provides metered memo store implementations.
package metermemo

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/memo"
)

var _ memo.Store[struct{}, struct{}] = (*Store[struct{}, struct{}])(nil)

// Store wraps a memo.Store with metrics.
type Store[K comparable, V any] struct {
	memo.Store[K, V]
	metrics *storeMetrics
}

// New creates a new metered store wrapper.
func New[K comparable, V any](
	namespace string,
	registerer prometheus.Registerer,
	s memo.Store[K, V],
) (*Store[K, V], error) {
	metrics, err := newMetrics(namespace, registerer)
	return &Store[K, V]{
		Store:   s,
		metrics: metrics,
	}, err
}

func (s *Store[K, V]) Put(key K, value V) {
	start := time.Now()
	s.Store.Put(key, value)
	putDuration := time.Since(start)

	s.metrics.putCount.Inc()
	s.metrics.putTime.Add(float64(putDuration))
	s.metrics.len.Set(float64(s.Store.Len()))
}

func (s *Store[K, V]) Get(key K) (V, bool) {
	start := time.Now()
	value, has := s.Store.Get(key)
	getDuration := time.Since(start)

	if has {
		s.metrics.getCount.With(hitLabels).Inc()
		s.metrics.getTime.With(hitLabels).Add(float64(getDuration))
	} else {
		s.metrics.getCount.With(missLabels).Inc()
		s.metrics.getTime.With(missLabels).Add(float64(getDuration))
	}

	return value, has
}

func (s *Store[K, _]) Evict(key K) {
	s.Store.Evict(key)
	s.metrics.len.Set(float64(s.Store.Len()))
}

func (s *Store[_, _]) Flush() {
	s.Store.Flush()
	s.metrics.len.Set(float64(s.Store.Len()))
}
