// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fib computes Fibonacci numbers, naively and memoized.
package fib

import (
	"errors"
	"math/big"

	"github.com/luxfi/memo"
)

// MaxIndex is the largest index whose Fibonacci number fits in a uint64.
const MaxIndex = 93

var (
	ErrNegative = errors.New("fib: negative index")
	ErrOverflow = errors.New("fib: result exceeds uint64, use Big")
)

// Naive computes fib(n) by direct recursion. Exponential in n; it exists as
// the reference the memoized evaluator must agree with.
func Naive(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, ErrNegative
	case n > MaxIndex:
		return 0, ErrOverflow
	case n < 2:
		return uint64(n), nil
	}
	a, err := Naive(n - 1)
	if err != nil {
		return 0, err
	}
	b, err := Naive(n - 2)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

func body(self func(int) (uint64, error), n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, ErrNegative
	case n > MaxIndex:
		return 0, ErrOverflow
	case n < 2:
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
}

// New returns a memoized Fibonacci evaluator with the base cases seeded.
// Each index is expanded at most once per store lifetime, so evaluating
// index n costs O(n) instead of the naive O(2^n).
func New(opts ...memo.Option[int, uint64]) *memo.Evaluator[int, uint64] {
	e := memo.New(body, opts...)
	e.Seed(map[int]uint64{0: 0, 1: 1})
	return e
}

// Big computes fib(n) over arbitrary-precision integers. It iterates
// instead of recursing, so indices far past MaxIndex neither overflow nor
// exhaust the stack.
func Big(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegative
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}
