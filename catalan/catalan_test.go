// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package catalan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathsKnownValues(t *testing.T) {
	require := require.New(t)

	e := NewPaths()
	for _, tc := range []struct {
		m, n int
		want uint64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{2, 2, 2},
		{5, 5, 42}, // the 5th Catalan number
		{10, 10, 16796},
	} {
		got, err := e.Evaluate(Cell{tc.m, tc.n})
		require.NoError(err)
		require.Equal(tc.want, got)
	}
}

func TestPathsNaiveEquivalence(t *testing.T) {
	require := require.New(t)

	e := NewPaths()
	for m := 0; m <= 7; m++ {
		for n := 0; n <= m; n++ {
			naive, err := NaivePaths(m, n)
			require.NoError(err)
			memoized, err := e.Evaluate(Cell{m, n})
			require.NoError(err)
			require.Equal(naive, memoized)
		}
	}
}

func TestPathsDomain(t *testing.T) {
	require := require.New(t)

	e := NewPaths()

	_, err := e.Evaluate(Cell{2, 3})
	require.ErrorIs(err, ErrOutOfDomain)

	_, err = e.Evaluate(Cell{2, -1})
	require.ErrorIs(err, ErrOutOfDomain)

	_, err = NaivePaths(2, 3)
	require.ErrorIs(err, ErrOutOfDomain)

	require.Equal(0, e.Len())
}

func TestPathsWorkBound(t *testing.T) {
	require := require.New(t)

	e := NewPaths()
	_, err := e.Evaluate(Cell{8, 8})
	require.NoError(err)

	evals := e.Evals()

	// Re-querying the root or any subproblem runs the body zero more times.
	_, err = e.Evaluate(Cell{8, 8})
	require.NoError(err)
	_, err = e.Evaluate(Cell{5, 3})
	require.NoError(err)
	require.Equal(evals, e.Evals())
}

func TestTreesKnownValues(t *testing.T) {
	require := require.New(t)

	e := NewTrees()
	for _, tc := range []struct {
		n    int
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 5},
		{5, 42},
		{10, 16796},
	} {
		got, err := e.Evaluate(tc.n)
		require.NoError(err)
		require.Equal(tc.want, got)
	}
}

func TestTreesNaiveEquivalence(t *testing.T) {
	require := require.New(t)

	e := NewTrees()
	for n := 0; n <= 12; n++ {
		naive, err := NaiveTrees(n)
		require.NoError(err)
		memoized, err := e.Evaluate(n)
		require.NoError(err)
		require.Equal(naive, memoized)
	}
}

func TestTreesWorkBound(t *testing.T) {
	require := require.New(t)

	e := NewTrees()
	_, err := e.Evaluate(10)
	require.NoError(err)

	// Counts 0 through 10 are each expanded exactly once.
	require.Equal(uint64(11), e.Evals())

	_, err = e.Evaluate(10)
	require.NoError(err)
	require.Equal(uint64(11), e.Evals())
}

func TestTreesDomain(t *testing.T) {
	require := require.New(t)

	e := NewTrees()
	_, err := e.Evaluate(-1)
	require.ErrorIs(err, ErrOutOfDomain)
	require.Equal(0, e.Len())
}

func TestPathsDiagonalMatchesTrees(t *testing.T) {
	require := require.New(t)

	paths := NewPaths()
	trees := NewTrees()
	for n := 0; n <= 12; n++ {
		a, err := paths.Evaluate(Cell{n, n})
		require.NoError(err)
		b, err := trees.Evaluate(n)
		require.NoError(err)
		require.Equal(a, b)
	}
}
