// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before tree construction begins.
type BuilderOption func(*builderConfig)

// WithValueFn sets the node value generator: (creation index, rng) -> value.
// Panics on nil to surface programmer error early.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueRange draws every value uniformly from [lo, hi] using the
// configured RNG. Panics if lo > hi. Without an RNG the values fall back
// to lo, keeping the build deterministic.
func WithValueRange(lo, hi int) BuilderOption {
	if lo > hi {
		panic("builder: WithValueRange(lo>hi)")
	}
	return WithValueFn(UniformValue(lo, hi))
}
