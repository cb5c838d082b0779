// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metermemo

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/memo"
)

func TestStoreMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	store, err := New[int, uint64]("memo", registry, memo.NewMapStore[int, uint64]())
	require.NoError(err)

	store.Put(1, 1)
	store.Put(2, 2)

	_, ok := store.Get(1)
	require.True(ok)
	_, ok = store.Get(3)
	require.False(ok)

	require.Equal(2.0, testutil.ToFloat64(store.metrics.putCount))
	require.Equal(1.0, testutil.ToFloat64(store.metrics.getCount.With(hitLabels)))
	require.Equal(1.0, testutil.ToFloat64(store.metrics.getCount.With(missLabels)))
	require.Equal(2.0, testutil.ToFloat64(store.metrics.len))

	store.Evict(1)
	require.Equal(1.0, testutil.ToFloat64(store.metrics.len))

	store.Flush()
	require.Equal(0.0, testutil.ToFloat64(store.metrics.len))
}

func TestStoreDoubleRegister(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	_, err := New[int, int]("memo", registry, memo.NewMapStore[int, int]())
	require.NoError(err)

	_, err = New[int, int]("memo", registry, memo.NewMapStore[int, int]())
	require.Error(err)
}

func TestStoreBacksEvaluator(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	store, err := New[int, uint64]("fib", registry, memo.NewMapStore[int, uint64]())
	require.NoError(err)

	e := memo.New(func(self func(int) (uint64, error), n int) (uint64, error) {
		if n < 2 {
			return uint64(n), nil
		}
		a, err := self(n - 1)
		if err != nil {
			return 0, err
		}
		b, err := self(n - 2)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	}, memo.WithStore[int, uint64](store))

	got, err := e.Evaluate(10)
	require.NoError(err)
	require.Equal(uint64(55), got)

	// Eleven misses populate the table; the warm re-query is all hits.
	require.Equal(11.0, testutil.ToFloat64(store.metrics.len))
	misses := testutil.ToFloat64(store.metrics.getCount.With(missLabels))

	_, err = e.Evaluate(10)
	require.NoError(err)
	require.Equal(misses, testutil.ToFloat64(store.metrics.getCount.With(missLabels)))
}
