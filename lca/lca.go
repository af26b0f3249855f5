// Package lca finds the lowest common ancestor of two nodes in a core.Tree.
//
// The lowest common ancestor of a and b is the deepest node that has both a
// and b in its subtree, where every node counts as its own ancestor.
//
// Algorithm (short-circuit search):
//
//	search(n):
//	  n is nil            → nothing
//	  n is a or b         → n   (the other target, if below, is irrelevant)
//	  l, r := search(n.Left), search(n.Right)
//	  both found          → n   (the targets diverge here)
//	  otherwise           → whichever of l, r is non-nil
//
// The short-circuit step only gives the right answer when both targets are
// in the tree, so LowestCommonAncestor checks membership first and reports
// ErrNodeNotFound instead of returning a misleading partial result.
//
// The search recurses once per level, so its stack use is proportional to
// tree height. Trees millions of levels deep should be rebalanced or
// queried with the dfs walker directly.
//
// Complexity: O(n) time, O(h) stack.
package lca

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/dfs"
)

// Sentinel errors for LCA queries.
var (
	// ErrNilNode is returned when either target is nil.
	ErrNilNode = errors.New("lca: target node is nil")

	// ErrNodeNotFound is returned when a target is not part of the tree.
	// It also matches core.ErrNodeNotFound.
	ErrNodeNotFound = fmt.Errorf("lca: %w", core.ErrNodeNotFound)
)

// LowestCommonAncestor returns the deepest node of t that is an ancestor of
// both a and b. If a is an ancestor of b, a is returned (and vice versa);
// if a == b, a is returned.
//
// Errors:
//   - ErrNilNode       if a or b is nil.
//   - ErrNodeNotFound  if a or b is not reachable from the root of t
//     (always the case for an empty tree).
func LowestCommonAncestor(t *core.Tree, a, b *core.Node) (*core.Node, error) {
	if a == nil || b == nil {
		return nil, ErrNilNode
	}
	// one read of the root: a concurrent SetRoot must not split the
	// membership check and the search across two trees
	root := t.Root()
	if err := requirePresent(core.NewTree(root), a, b); err != nil {
		return nil, err
	}

	return search(root, a, b), nil
}

// LowestCommonAncestorByValue resolves x and y to the first node in
// pre-order holding each value, then runs LowestCommonAncestor.
// Returns ErrNodeNotFound when a value does not occur in t.
func LowestCommonAncestorByValue(t *core.Tree, x, y int) (*core.Node, error) {
	a, ok := t.Find(x)
	if !ok {
		return nil, fmt.Errorf("%w: value %d", ErrNodeNotFound, x)
	}
	b, ok := t.Find(y)
	if !ok {
		return nil, fmt.Errorf("%w: value %d", ErrNodeNotFound, y)
	}

	return LowestCommonAncestor(t, a, b)
}

// search is the short-circuit recursion described in the package doc.
func search(n, a, b *core.Node) *core.Node {
	if n == nil || n == a || n == b {
		return n
	}
	left := search(n.Left, a, b)
	right := search(n.Right, a, b)
	if left != nil && right != nil {
		return n
	}
	if left != nil {
		return left
	}

	return right
}

// requirePresent walks t once, stopping as soon as both targets are seen.
func requirePresent(t *core.Tree, a, b *core.Node) error {
	foundA, foundB := false, false
	_, _ = dfs.DFS(t, dfs.WithOnVisit(func(n *core.Node, _ int) error {
		if n == a {
			foundA = true
		}
		if n == b {
			foundB = true
		}
		if foundA && foundB {
			return dfs.ErrStop
		}
		return nil
	}))
	switch {
	case !foundA:
		return fmt.Errorf("%w: first target (value %d)", ErrNodeNotFound, a.Value)
	case !foundB:
		return fmt.Errorf("%w: second target (value %d)", ErrNodeNotFound, b.Value)
	}

	return nil
}
