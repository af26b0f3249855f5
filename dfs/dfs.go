// Package dfs implements depth-first traversal of a core.Tree.
// It walks with an explicit stack, so tree height is bounded by heap rather
// than goroutine stack, and supports cancellation, pre- and post-order hooks,
// depth limits, child filtering and early stop.
//
// Key features:
//   - DFS(t, opts...): full walk recording pre-order, post-order, depth, parent
//   - Fold(t, empty, combine, opts...): bottom-up aggregation over subtrees
//   - Hooks: OnVisit (pre-order) & OnExit (post-order); ErrStop ends cleanly
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(n) for traversal, plus overhead of hooks and filters.
//   - Memory: O(n) for result maps, O(h) for the stack.
//
// Errors:
//
//   - ErrOptionViolation        if an option is invalid.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit, other than ErrStop.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// frame is one pending node on the explicit stack.
type frame struct {
	node     *core.Node
	parent   *core.Node
	depth    int
	expanded bool // children already pushed; next pop is the post-order exit
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs a depth-first walk of t from the root, left subtree before
// right. An empty (or nil) tree yields an empty result and no error.
// Returns DFSResult, or an error if aborted by context or hook.
func DFS(t *core.Tree, opts ...Option) (*DFSResult, error) {
	// 1. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 2. Initialize result
	res := &DFSResult{
		Order:    make([]*core.Node, 0),
		PreOrder: make([]*core.Node, 0),
		Depth:    make(map[*core.Node]int),
		Parent:   make(map[*core.Node]*core.Node),
	}
	root := t.Root()
	if root == nil {
		return res, nil
	}

	// 3. Traverse
	w := &dfsWalker{opts: dopts, res: res, stack: []frame{{node: root}}}
	if err := w.loop(); err != nil {
		if errors.Is(err, ErrStop) {
			return res, nil
		}
		// abort and clear post-order
		res.Order = nil

		return res, err
	}

	return res, nil
}

// loop drains the stack until empty, error, or cancellation.
func (w *dfsWalker) loop() error {
	var (
		top *frame
		f   frame
		err error
	)
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top = &w.stack[len(w.stack)-1]
		if top.expanded {
			// 2. Post-order exit
			f = *top
			w.stack = w.stack[:len(w.stack)-1]
			if err = w.exit(f); err != nil {
				return err
			}
			continue
		}

		// 3. Depth limit: drop nodes below the limit
		if w.opts.MaxDepth >= 0 && top.depth > w.opts.MaxDepth {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		// 4. Discover; mark expanded before pushing children
		top.expanded = true
		f = *top
		if err = w.visit(f); err != nil {
			return err
		}
		w.pushChildren(f)
	}

	return nil
}

// visit records depth, parent and pre-order position, then calls OnVisit.
func (w *dfsWalker) visit(f frame) error {
	w.res.Depth[f.node] = f.depth
	if f.parent != nil {
		w.res.Parent[f.node] = f.parent
	}
	w.res.PreOrder = append(w.res.PreOrder, f.node)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(f.node, f.depth); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("dfs: OnVisit hook for value %d: %w", f.node.Value, err)
		}
	}

	return nil
}

// exit runs OnExit and appends the node to the post-order.
func (w *dfsWalker) exit(f frame) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(f.node, f.depth); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("dfs: OnExit hook for value %d: %w", f.node.Value, err)
		}
	}
	w.res.Order = append(w.res.Order, f.node)

	return nil
}

// pushChildren stacks right before left so the left subtree is walked first.
func (w *dfsWalker) pushChildren(f frame) {
	for _, child := range [2]*core.Node{f.node.Right, f.node.Left} {
		if child == nil {
			continue
		}
		if w.opts.FilterChild != nil && !w.opts.FilterChild(f.node, child) {
			continue
		}
		w.stack = append(w.stack, frame{node: child, parent: f.node, depth: f.depth + 1})
	}
}
