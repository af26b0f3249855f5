// Package pathsum finds the maximum path sum of a core.Tree.
//
// A path is any sequence of nodes joined by parent/child links, used at most
// once each. It need not pass through the root nor reach a leaf, and a single
// node is a path. At every node two quantities matter:
//
//   - gain: node.Value + max(0, leftGain, rightGain). The best downward path
//     starting here, which is all a parent can extend.
//   - bent: node.Value + max(0, leftGain) + max(0, rightGain). The best path
//     turning at this node; no ancestor can extend it.
//
// The answer is the largest bent value seen anywhere. Negative branches are
// clamped to zero, i.e. never extended through. The running maximum starts
// at 0, so an empty tree, or a tree holding only non-positive values, yields 0.
//
// Complexity: O(n) time, O(h) extra space (MaxPath: O(n) for the gain index).
package pathsum

import (
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/dfs"
)

// MaxPathSum returns the largest sum along any path of t, or 0 when no path
// has a positive sum.
func MaxPathSum(t *core.Tree) int {
	best := 0
	// background context and no hooks: Fold cannot fail
	_, _ = dfs.Fold(t, 0, func(n *core.Node, left, right int) int {
		left, right = max(left, 0), max(right, 0)
		best = max(best, n.Value+left+right)
		return n.Value + max(left, right)
	})

	return best
}

// MaxPath returns the nodes of one path achieving MaxPathSum, in path order:
// up the left arm to the turning node, then down the right arm. Ties prefer
// the left child. Returns nil when MaxPathSum is 0 with no positive path.
func MaxPath(t *core.Tree) []*core.Node {
	gain := make(map[*core.Node]int)
	best := 0
	var turn *core.Node
	_, _ = dfs.Fold(t, 0, func(n *core.Node, left, right int) int {
		left, right = max(left, 0), max(right, 0)
		if bent := n.Value + left + right; bent > best {
			best, turn = bent, n
		}
		g := n.Value + max(left, right)
		gain[n] = g
		return g
	})
	if turn == nil {
		return nil
	}

	var path []*core.Node
	if gain[turn.Left] > 0 {
		leftArm := arm(turn.Left, gain)
		for i := len(leftArm) - 1; i >= 0; i-- {
			path = append(path, leftArm[i])
		}
	}
	path = append(path, turn)
	if gain[turn.Right] > 0 {
		path = append(path, arm(turn.Right, gain)...)
	}

	return path
}

// arm follows the best downward extension from n, n first.
// Missing keys (nil children) read as gain 0 and stop the walk.
func arm(n *core.Node, gain map[*core.Node]int) []*core.Node {
	var out []*core.Node
	for n != nil {
		out = append(out, n)
		l, r := gain[n.Left], gain[n.Right]
		switch {
		case l > 0 && l >= r:
			n = n.Left
		case r > 0:
			n = n.Right
		default:
			n = nil
		}
	}

	return out
}

// Sum adds up the values of nodes.
func Sum(nodes []*core.Node) int {
	s := 0
	for _, n := range nodes {
		s += n.Value
	}

	return s
}
