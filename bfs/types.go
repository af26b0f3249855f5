// Package bfs provides tunable options and error definitions
// for breadth-first (level-order) traversal of a core.Tree.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node the walk never visited.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives the node and its depth from the root.
	OnEnqueue func(n *core.Node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n *core.Node, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n *core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterChild can skip a child (and its subtree) by returning false.
	FilterChild func(parent, child *core.Node) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all children allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:         context.Background(),
		OnEnqueue:   func(*core.Node, int) {},
		OnDequeue:   func(*core.Node, int) {},
		OnVisit:     func(*core.Node, int) error { return nil },
		MaxDepth:    0,
		FilterChild: func(_, _ *core.Node) bool { return true },
		err:         nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(n *core.Node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(n *core.Node, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n *core.Node, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterChild skips children when fn returns false.
func WithFilterChild(fn func(parent, child *core.Node) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterChild = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in level order (left to right within a level).
//   - Depth: map from node to its distance (in edges) from the root.
//   - Parent: map from node to its parent; the root has no entry.
type BFSResult struct {
	Order  []*core.Node
	Depth  map[*core.Node]int
	Parent map[*core.Node]*core.Node
}

// PathTo reconstructs the path from the root to dest.
// Returns ErrNotReached if dest was not visited.
func (r *BFSResult) PathTo(dest *core.Node) ([]*core.Node, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, ErrNotReached
	}
	// build reversed path
	path := []*core.Node{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Levels groups Order by depth: Levels()[d] holds the nodes at depth d,
// left to right.
func (r *BFSResult) Levels() [][]*core.Node {
	var levels [][]*core.Node
	var d int
	for _, n := range r.Order {
		d = r.Depth[n]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], n)
	}

	return levels
}
