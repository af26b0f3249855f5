// Package dfs implements depth-first traversal of a core.Tree.
//
// What:
//
//   - DFS walks the tree root-first, left subtree before right, and returns a
//     DFSResult containing:
//   - PreOrder: discovery sequence
//   - Order:    finish sequence (post-order)
//   - Depth:    node → distance (edges) from the root
//   - Parent:   node → parent (root absent)
//   - Fold aggregates a value bottom-up over every subtree; the depth and
//     pathsum packages are built on it.
//
// Why:
//
//   - Recursive tree code is bounded by goroutine stack size; a skewed tree of
//     millions of nodes overflows it. Both DFS and Fold keep their own stack
//     on the heap, so any finite tree can be walked.
//   - Hooks let other packages (cousins, codec tooling, the CLI) reuse one
//     walker instead of each writing its own traversal.
//
// Determinism:
//
//	Left is always explored before right, so PreOrder and Order are fully
//	reproducible for a given tree.
//
// Complexity (n = nodes, h = height):
//
//   - Time:   O(n)
//   - Memory: O(n) for result maps, O(h) for the explicit stack.
//
// Usage:
//
//	res, err := dfs.DFS(t,
//	    dfs.WithMaxDepth(3),
//	    dfs.WithOnVisit(func(n *core.Node, depth int) error {
//	        if n == target {
//	            return dfs.ErrStop
//	        }
//	        return nil
//	    }),
//	)
//
//	height, _ := dfs.Fold(t, 0, func(_ *core.Node, l, r int) int {
//	    return 1 + max(l, r)
//	})
//
// Errors:
//
//   - ErrOptionViolation  if MaxDepth < -1.
//   - context.Canceled    if ctx is done.
//   - any error returned by OnVisit or OnExit (ErrStop ends cleanly instead).
package dfs
