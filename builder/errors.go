// SPDX-License-Identifier: MIT
// Package: bintree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter (n, depth) is below the
// allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTrailingSlots indicates a level-order description holds slots that no
// present node can own.
var ErrTrailingSlots = errors.New("builder: trailing level-order slots")

// ErrUnknownSide indicates an unsupported Side for the Chain constructor.
var ErrUnknownSide = errors.New("builder: unknown chain side")

// ErrConstructFailed indicates that construction could not proceed at all
// (for instance, a nil constructor was passed to Build).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a sentinel with the constructor name and details.
// The result satisfies errors.Is(result, sentinel).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
