// Package bfs provides level-order traversal of a core.Tree,
// returning depths, parent links, and visit order.
//
// BFS explores nodes in increasing depth from the root, left to right,
// with optional hooks, depth limiting, and child filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bintree/core"
)

// queueItem pairs a node with its depth and its parent.
type queueItem struct {
	node   *core.Node
	depth  int
	parent *core.Node // nil for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs a level-order traversal of t from its root, applying any number
// of functional Options. An empty (or nil) tree yields an empty result.
// Returns ErrOptionViolation for bad options, the context error on
// cancellation, or any user-supplied hook error.
func BFS(t *core.Tree, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0),
		res: &BFSResult{
			Order:  make([]*core.Node, 0),
			Depth:  make(map[*core.Node]int),
			Parent: make(map[*core.Node]*core.Node),
		},
	}

	root := t.Root()
	if root == nil {
		return w.res, nil
	}
	// Seed queue with the root (no parent)
	w.enqueue(root, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue records depth and parent, calls OnEnqueue, and adds the node to
// the queue. A tree has no cross edges, so no visited set is needed.
func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	w.res.Depth[n] = d
	if parent != nil {
		w.res.Parent[n] = parent
	}
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem{node: n, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueChildren(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at value %d: %w", item.node.Value, err)
	}
	return nil
}

// enqueueChildren applies filtering and MaxDepth, then enqueues the left
// child followed by the right child.
func (w *walker) enqueueChildren(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, child := range [2]*core.Node{item.node.Left, item.node.Right} {
		if child == nil || !w.opts.FilterChild(item.node, child) {
			continue
		}
		w.enqueue(child, nextDepth, item.node)
	}
}
