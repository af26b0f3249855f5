// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(cons, opts...). Resolves cfg, runs cons, wraps the root in a Tree.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed ⇒ identical trees.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// Constructor produces the root of a fresh tree using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Allocate every node themselves; no node is shared with another tree.
//   - Preserve determinism for the same config.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(cfg builderConfig) (*core.Node, error)

// Build resolves the builder configuration from opts, runs cons and wraps
// the produced root in a new core.Tree. Constructor errors are wrapped with
// the context "Build: %w".
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Constructor: see the individual impl_*.go files.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor errors; branch with errors.Is against builder sentinels
//     (ErrTooFewNodes, ErrNeedRandSource, ErrTrailingSlots, ...).
func Build(cons Constructor, opts ...BuilderOption) (*core.Tree, error) {
	if cons == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	root, err := cons(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return core.NewTree(root), nil
}

// MustBuild is Build for fixtures and examples: it panics on error.
func MustBuild(cons Constructor, opts ...BuilderOption) *core.Tree {
	t, err := Build(cons, opts...)
	if err != nil {
		panic(err)
	}

	return t
}
