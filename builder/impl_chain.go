// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_chain.go - Chain(n, side) constructor: a fully skewed tree.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewNodes); n == 0 yields an empty tree.
//   - Each node has exactly one child except the last; the child hangs on
//     the Left, the Right, or alternates (Zigzag, starting left).
//   - Values assigned via cfg.valueFn from the root down (index 0..n-1).
//
// Complexity:
//   - Time: O(n), Space: O(1) extra.

package builder

import "github.com/katalvlaran/bintree/core"

const methodChain = "Chain"

// Side selects where Chain hangs each child.
type Side int

const (
	// LeftSide hangs every child on the left.
	LeftSide Side = iota
	// RightSide hangs every child on the right.
	RightSide
	// Zigzag alternates left, right, left, ...
	Zigzag
)

// Chain returns a Constructor that builds a skewed tree of n nodes.
func Chain(n int, side Side) Constructor {
	return func(cfg builderConfig) (*core.Node, error) {
		if n < 0 {
			return nil, builderErrorf(methodChain, ErrTooFewNodes, "n=%d < 0", n)
		}
		if side < LeftSide || side > Zigzag {
			return nil, builderErrorf(methodChain, ErrUnknownSide, "side=%d", side)
		}
		if n == 0 {
			return nil, nil
		}

		root := &core.Node{Value: cfg.value(0)}
		cur := root
		var next *core.Node
		for i := 1; i < n; i++ {
			next = &core.Node{Value: cfg.value(i)}
			if side == LeftSide || (side == Zigzag && i%2 == 1) {
				cur.Left = next
			} else {
				cur.Right = next
			}
			cur = next
		}

		return root, nil
	}
}
