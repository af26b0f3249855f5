// SPDX-License-Identifier: MIT
// Package builder provides deterministic constructors for core.Tree
// fixtures: complete and perfect trees, skewed chains, random shapes, and
// trees described in level order.
//
// Every constructor is a Constructor closure run by Build:
//
//	t, err := builder.Build(builder.Perfect(3))                       // 1..7 in heap order
//	t, err := builder.Build(builder.Chain(1e6, builder.LeftSide))     // skewed, height 1e6
//	t, err := builder.Build(builder.Random(100),
//	    builder.WithSeed(42), builder.WithValueRange(-50, 50))         // reproducible
//	t, err := builder.Build(builder.LevelOrder([]builder.Slot{
//	    builder.V(1), builder.V(2), builder.V(3), builder.Nil, builder.Nil, builder.V(4), builder.V(5),
//	}))                                                                // 1(2, 3(4,5))
//
// Options:
//
//   - WithValueFn(fn)        custom value per creation index.
//   - WithValueRange(lo, hi) uniform values from the RNG.
//   - WithSeed(seed)         deterministic RNG.
//   - WithRand(r)            explicit RNG.
//
// Option constructors panic on meaningless input (nil functions, lo > hi);
// constructors never panic and report sentinel errors instead:
//
//   - ErrTooFewNodes     negative sizes.
//   - ErrNeedRandSource  Random without WithSeed/WithRand.
//   - ErrTrailingSlots   level-order values that no node can own.
//   - ErrUnknownSide     invalid Chain side.
//   - ErrConstructFailed nil constructor or oversize request.
package builder
