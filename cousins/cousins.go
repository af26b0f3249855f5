// Package cousins decides whether two nodes of a core.Tree are cousins:
// distinct nodes at the same depth whose parents differ.
//
// Nodes are compared by identity. A node is never its own cousin, siblings
// are not cousins, the root has no cousins, and nodes that are not part of
// the tree are never cousins of anything. None of these cases is an error:
// the answer is simply false.
package cousins

import (
	"github.com/katalvlaran/bintree/bfs"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/dfs"
)

// FindDepthAndParent locates target in t and reports its depth (edges from
// the root) and its parent. ok is false if target is nil, absent from t, or
// is the root, which has no parent.
//
// Complexity: O(n) worst case; the walk stops at target.
func FindDepthAndParent(t *core.Tree, target *core.Node) (depth int, parent *core.Node, ok bool) {
	if target == nil {
		return 0, nil, false
	}
	res := locate(t, target)
	parent, ok = res.Parent[target]
	if !ok {
		return 0, nil, false
	}

	return res.Depth[target], parent, true
}

// AreCousins reports whether a and b are cousins in t. The answer is
// symmetric in a and b.
//
// Both nodes are located in a single depth-first walk that stops as soon
// as both have been seen.
// Complexity: O(n) time, O(n) space for the walk index.
func AreCousins(t *core.Tree, a, b *core.Node) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	res := locate(t, a, b)
	pa, okA := res.Parent[a]
	pb, okB := res.Parent[b]
	if !okA || !okB {
		return false
	}

	return res.Depth[a] == res.Depth[b] && pa != pb
}

// Of returns every cousin of n in t, left to right. It returns nil when n
// is nil, absent, or the root.
func Of(t *core.Tree, n *core.Node) []*core.Node {
	if n == nil {
		return nil
	}
	res, err := bfs.BFS(t)
	if err != nil {
		return nil
	}
	parent, ok := res.Parent[n]
	if !ok {
		return nil
	}
	d := res.Depth[n]
	var out []*core.Node
	for _, m := range res.Levels()[d] {
		if res.Parent[m] != parent {
			out = append(out, m)
		}
	}

	return out
}

// locate walks t until every target has been visited, recording depth and
// parent for each node seen so far.
func locate(t *core.Tree, targets ...*core.Node) *dfs.DFSResult {
	remaining := len(targets)
	res, _ := dfs.DFS(t, dfs.WithOnVisit(func(n *core.Node, _ int) error {
		for _, target := range targets {
			if n == target {
				remaining--
			}
		}
		if remaining == 0 {
			return dfs.ErrStop
		}
		return nil
	}))

	return res
}
