// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_complete.go - Complete(n) and Perfect(depth) constructors.
//
// Contract:
//   - Complete: n ≥ 0 (else ErrTooFewNodes); n == 0 yields an empty tree.
//   - Heap layout: node i has children 2i+1 and 2i+2; every level is full
//     except possibly the last, which is filled left to right.
//   - Values assigned via cfg.valueFn in level order (index 0..n-1).
//   - Perfect(depth) = Complete(2^depth - 1); depth ≥ 0, depth ≤ maxPerfectDepth.
//
// Complexity:
//   - Time: O(n).
//   - Space: O(n) for the node index.

package builder

import "github.com/katalvlaran/bintree/core"

const (
	methodComplete = "Complete"
	methodPerfect  = "Perfect"

	// maxPerfectDepth keeps 2^depth-1 far away from int overflow and from
	// allocating more nodes than any test or CLI run needs.
	maxPerfectDepth = 30
)

// Complete returns a Constructor that builds a complete tree of n nodes.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*core.Node, error) {
		if n < 0 {
			return nil, builderErrorf(methodComplete, ErrTooFewNodes, "n=%d < 0", n)
		}
		return heapTree(n, cfg), nil
	}
}

// Perfect returns a Constructor that builds a perfect tree of the given
// depth: every internal node has two children and all leaves share a level.
func Perfect(depth int) Constructor {
	return func(cfg builderConfig) (*core.Node, error) {
		if depth < 0 {
			return nil, builderErrorf(methodPerfect, ErrTooFewNodes, "depth=%d < 0", depth)
		}
		if depth > maxPerfectDepth {
			return nil, builderErrorf(methodPerfect, ErrConstructFailed, "depth=%d > max=%d", depth, maxPerfectDepth)
		}
		return heapTree((1<<depth)-1, cfg), nil
	}
}

// heapTree allocates n nodes and links them in heap order.
func heapTree(n int, cfg builderConfig) *core.Node {
	if n == 0 {
		return nil
	}
	nodes := make([]*core.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = &core.Node{Value: cfg.value(i)}
	}
	var l, r int
	for i := 0; i < n; i++ {
		l, r = 2*i+1, 2*i+2
		if l < n {
			nodes[i].Left = nodes[l]
		}
		if r < n {
			nodes[i].Right = nodes[r]
		}
	}

	return nodes[0]
}
