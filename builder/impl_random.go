// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// impl_random.go - Random(n) constructor: a random shape of n nodes.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewNodes); n == 0 yields an empty tree.
//   - Requires cfg.rng (ErrNeedRandSource otherwise).
//   - Node i (i ≥ 1) is placed by a random walk from the root, choosing left
//     or right with equal probability until an empty slot is found.
//   - Values assigned via cfg.valueFn in creation order.
//
// Complexity:
//   - Time: O(n·h) where h is the resulting height (expected O(n log n)).
//
// Determinism:
//   - Same seed ⇒ same shape and values.

package builder

import "github.com/katalvlaran/bintree/core"

const methodRandom = "Random"

// Random returns a Constructor that builds a randomly shaped tree.
func Random(n int) Constructor {
	return func(cfg builderConfig) (*core.Node, error) {
		if n < 0 {
			return nil, builderErrorf(methodRandom, ErrTooFewNodes, "n=%d < 0", n)
		}
		if cfg.rng == nil {
			return nil, builderErrorf(methodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
		}
		if n == 0 {
			return nil, nil
		}

		root := &core.Node{Value: cfg.value(0)}
		var (
			cur  *core.Node
			slot **core.Node
		)
		for i := 1; i < n; i++ {
			cur = root
			for {
				if cfg.rng.Intn(2) == 0 {
					slot = &cur.Left
				} else {
					slot = &cur.Right
				}
				if *slot == nil {
					*slot = &core.Node{Value: cfg.value(i)}
					break
				}
				cur = *slot
			}
		}

		return root, nil
	}
}
