// Package bfs provides a level-order (breadth-first) traversal of a core.Tree,
// returning depths, parent links, and visit order.
//
// What
//
//   - Visit nodes in non-decreasing depth from the root, left to right
//     within a level.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from the root
//   - Parent: map from node → its parent
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows pruning of subtrees via WithFilterChild.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Level grouping (Levels) and root paths (PathTo) for reporting.
//   - Global queries that must see every node once, such as the
//     nextlarger search, without recursion.
//
// Determinism
//
//	Children are enqueued left before right, so the visit sequence is fully
//	reproducible.
//
// Complexity (n = nodes, w = widest level)
//
//   - Time:   O(n)
//   - Memory: O(n) for Depth and Parent maps, O(w) for the live queue.
//
// Usage
//
//	res, err := bfs.BFS(t,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(n *core.Node, depth int) error { /* ... */ return nil }),
//	)
//	for d, level := range res.Levels() { /* ... */ }
//
// Errors
//
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for nodes outside the walk.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
