// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package catalan counts Catalan-family structures via two classic
// recursions: monotone grid paths below the diagonal and binary tree
// shapes. Both come naive and memoized.
package catalan

import (
	"errors"

	"github.com/luxfi/memo"
)

var ErrOutOfDomain = errors.New("catalan: want 0 <= n <= m")

// Cell is the argument pair of the grid-path recursion.
type Cell struct {
	M int
	N int
}

// NaivePaths counts grid paths from (m, n) by direct recursion:
// paths(_, 0) = 1; paths(m, n) = paths(m, n-1) when m == n; otherwise
// paths(m, n-1) + paths(m-1, n). On the diagonal this yields the Catalan
// numbers. The recursion only terminates for 0 <= n <= m; anything else is
// rejected.
func NaivePaths(m, n int) (uint64, error) {
	switch {
	case n < 0 || n > m:
		return 0, ErrOutOfDomain
	case n == 0:
		return 1, nil
	case m == n:
		return NaivePaths(m, n-1)
	}
	down, err := NaivePaths(m, n-1)
	if err != nil {
		return 0, err
	}
	left, err := NaivePaths(m-1, n)
	if err != nil {
		return 0, err
	}
	return down + left, nil
}

func pathsBody(self func(Cell) (uint64, error), c Cell) (uint64, error) {
	switch {
	case c.N < 0 || c.N > c.M:
		return 0, ErrOutOfDomain
	case c.N == 0:
		return 1, nil
	case c.M == c.N:
		return self(Cell{c.M, c.N - 1})
	}
	down, err := self(Cell{c.M, c.N - 1})
	if err != nil {
		return 0, err
	}
	left, err := self(Cell{c.M - 1, c.N})
	if err != nil {
		return 0, err
	}
	return down + left, nil
}

// NewPaths returns a memoized grid-path evaluator. Distinct reachable cells
// number O(m*n), so that bounds the work for any sequence of queries.
func NewPaths(opts ...memo.Option[Cell, uint64]) *memo.Evaluator[Cell, uint64] {
	return memo.New(pathsBody, opts...)
}

// NaiveTrees counts binary tree shapes with n nodes by direct recursion:
// trees(0) = 1; trees(n) = sum over i of trees(i) * trees(n-1-i). This is
// the n-th Catalan number. Results overflow uint64 past n = 36.
func NaiveTrees(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrOutOfDomain
	}
	if n == 0 {
		return 1, nil
	}
	var total uint64
	for i := 0; i < n; i++ {
		lhs, err := NaiveTrees(i)
		if err != nil {
			return 0, err
		}
		rhs, err := NaiveTrees(n - 1 - i)
		if err != nil {
			return 0, err
		}
		total += lhs * rhs
	}
	return total, nil
}

func treesBody(self func(int) (uint64, error), n int) (uint64, error) {
	if n < 0 {
		return 0, ErrOutOfDomain
	}
	if n == 0 {
		return 1, nil
	}
	var total uint64
	for i := 0; i < n; i++ {
		lhs, err := self(i)
		if err != nil {
			return 0, err
		}
		rhs, err := self(n - 1 - i)
		if err != nil {
			return 0, err
		}
		total += lhs * rhs
	}
	return total, nil
}

// NewTrees returns a memoized binary-tree-count evaluator.
func NewTrees(opts ...memo.Option[int, uint64]) *memo.Evaluator[int, uint64] {
	return memo.New(treesBody, opts...)
}
