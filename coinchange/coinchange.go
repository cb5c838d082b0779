// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package coinchange counts the ways an amount can be paid with a set of
// coin denominations.
package coinchange

import (
	"github.com/luxfi/memo"
)

// Naive counts by direct recursion on (amount, coin suffix):
// count(0, _) = 1; count(_, []) = 0; a negative amount counts 0; otherwise
// count(amount, coins) = count(amount, coins[1:]) + count(amount-coins[0], coins).
// Total on all inputs, so no error path.
func Naive(amount int, coins []int) uint64 {
	switch {
	case amount == 0:
		return 1
	case amount < 0 || len(coins) == 0:
		return 0
	}
	return Naive(amount, coins[1:]) + Naive(amount-coins[0], coins)
}

// key identifies a subproblem: the remaining amount and the index of the
// first coin still usable.
type key struct {
	amount int
	suffix int
}

// Counter memoizes coin-change counting for a fixed denomination list. The
// denominations are captured at construction, so every cached entry belongs
// to the same list and entries can never disagree across calls.
type Counter struct {
	coins []int
	eval  *memo.Evaluator[key, uint64]
}

// NewCounter creates a Counter for the given denominations.
func NewCounter(coins []int) *Counter {
	c := &Counter{coins: append([]int(nil), coins...)}
	c.eval = memo.New(c.body)
	return c
}

func (c *Counter) body(self func(key) (uint64, error), k key) (uint64, error) {
	switch {
	case k.amount == 0:
		return 1, nil
	case k.amount < 0 || k.suffix >= len(c.coins):
		return 0, nil
	}
	skip, err := self(key{k.amount, k.suffix + 1})
	if err != nil {
		return 0, err
	}
	take, err := self(key{k.amount - c.coins[k.suffix], k.suffix})
	if err != nil {
		return 0, err
	}
	return skip + take, nil
}

// Count returns the number of ways to pay amount. The body is total, so
// evaluation cannot fail.
func (c *Counter) Count(amount int) uint64 {
	n, _ := c.eval.Evaluate(key{amount, 0})
	return n
}

// Reset clears accumulated subproblem results.
func (c *Counter) Reset() {
	c.eval.Reset()
}

// Evals returns how many distinct subproblems have been expanded.
func (c *Counter) Evals() uint64 {
	return c.eval.Evals()
}
