// Package dfs defines types and options for depth-first traversal of a
// core.Tree, including cancellation, pre-/post-order hooks, depth limiting,
// child filtering and early stop.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

var (
	// ErrStop may be returned by OnVisit or OnExit to end the traversal early.
	// DFS then returns the partial result and a nil error.
	ErrStop = errors.New("dfs: stop traversal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(t, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(n) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts DFS at the next node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is discovered (pre-order).
	// Returning ErrStop ends the walk cleanly; any other error aborts it.
	OnVisit func(n *core.Node, depth int) error

	// OnExit, if non-nil, is invoked after both subtrees of a node have been
	// explored (post-order), before the node is appended to Order.
	OnExit func(n *core.Node, depth int) error

	// MaxDepth, if non-negative, skips nodes deeper than the limit.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterChild, if non-nil, is called for each child before descending.
	// Return false to skip that child and its whole subtree.
	FilterChild func(parent, child *core.Node) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No child filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:         context.Background(),
		OnVisit:     nil,
		OnExit:      nil,
		MaxDepth:    -1,
		FilterChild: nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(n *core.Node, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(n *core.Node, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
//
//	limit >= 0: visit nodes at depth <= limit
//	limit == -1: explicit no limit
//	limit < -1: invalid option → ErrOptionViolation
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be below -1 (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterChild returns an Option that prunes children for which fn
// returns false.
func WithFilterChild(fn func(parent, child *core.Node) bool) Option {
	return func(o *DFSOptions) {
		o.FilterChild = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []*core.Node

	// PreOrder records nodes in the sequence they were discovered.
	PreOrder []*core.Node

	// Depth maps each visited node to its distance (#edges) from the root.
	Depth map[*core.Node]int

	// Parent maps each visited node to its parent. The root has no entry.
	Parent map[*core.Node]*core.Node
}

// Values returns the values of nodes in the given order.
func Values(nodes []*core.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Value
	}

	return out
}
