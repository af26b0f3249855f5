// Package depth computes the minimum and maximum depth of a core.Tree and
// checks height balance.
//
// Depth counts nodes, not edges: a single root has depth 1, an empty tree 0.
//
// MinDepth is the number of nodes on the shortest root-to-leaf path. A node
// with only one child is not a leaf, so the path must continue through the
// existing child rather than stop at the missing one.
//
// Both functions are total: they never fail and never panic. They run on
// dfs.Fold, so skewed trees of any height are handled without recursion.
//
// Complexity: O(n) time, O(h) extra space.
package depth

import (
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/dfs"
)

// MaxDepth returns 1 + max(left, right) depth, or 0 for an empty tree.
func MaxDepth(t *core.Tree) int {
	// background context and no hooks: Fold cannot fail
	d, _ := dfs.Fold(t, 0, func(_ *core.Node, left, right int) int {
		return 1 + max(left, right)
	})

	return d
}

// MinDepth returns the node count of the shortest root-to-leaf path,
// or 0 for an empty tree.
func MinDepth(t *core.Tree) int {
	d, _ := dfs.Fold(t, 0, func(_ *core.Node, left, right int) int {
		// one side absent: the depth runs through the other side
		if left == 0 || right == 0 {
			return 1 + max(left, right)
		}
		return 1 + min(left, right)
	})

	return d
}

// Balanced reports whether t is height-balanced: at every node the heights
// of the left and right subtrees differ by at most one. An empty tree is
// balanced.
func Balanced(t *core.Tree) bool {
	type hb struct {
		height int
		ok     bool
	}
	res, _ := dfs.Fold(t, hb{ok: true}, func(_ *core.Node, left, right hb) hb {
		diff := left.height - right.height
		return hb{
			height: 1 + max(left.height, right.height),
			ok:     left.ok && right.ok && diff >= -1 && diff <= 1,
		}
	})

	return res.ok
}
