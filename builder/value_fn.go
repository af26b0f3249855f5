// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// value_fn.go - node value strategies.

package builder

import (
	"math"
	"math/rand"
)

// ValueFn computes the value of the node created at index idx. rng may be
// nil; implementations must stay deterministic for a given (idx, rng state).
type ValueFn func(idx int, rng *rand.Rand) int

// SequentialValue numbers nodes 1, 2, 3, ... in creation order.
func SequentialValue(idx int, _ *rand.Rand) int {
	return idx + 1
}

// ConstValue returns a ValueFn that gives every node the value v.
func ConstValue(v int) ValueFn {
	return func(int, *rand.Rand) int { return v }
}

// UniformValue returns a ValueFn drawing from [lo, hi]. With a nil rng it
// returns lo. Any lo ≤ hi is accepted, including the full int range.
func UniformValue(lo, hi int) ValueFn {
	// hi-lo computed in uint64 cannot overflow
	span := uint64(hi) - uint64(lo)
	return func(_ int, rng *rand.Rand) int {
		if rng == nil {
			return lo
		}
		if span < uint64(math.MaxInt) {
			return lo + rng.Intn(int(span)+1)
		}
		// span+1 does not fit in an int: rejection-sample 64-bit draws
		for {
			if u := rng.Uint64(); u <= span {
				return int(uint64(lo) + u)
			}
		}
	}
}
