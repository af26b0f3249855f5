// Package nextlarger answers "what is the smallest value in the tree that is
// strictly greater than x?" for an arbitrary, unordered core.Tree.
//
// The tree keeps no ordering invariant, so every node is inspected once in
// level order (via bfs) while the running minimum of values above x is kept.
// Visit order does not affect the answer.
//
// Complexity: O(n) time, O(w) queue space plus the bfs result index.
package nextlarger

import (
	"context"

	"github.com/katalvlaran/bintree/bfs"
	"github.com/katalvlaran/bintree/core"
)

// NextLarger returns the smallest value in t strictly greater than x.
// ok is false when no such value exists, including for an empty tree.
func NextLarger(t *core.Tree, x int) (value int, ok bool) {
	// background context and a hook that never fails: no error possible
	value, ok, _ = NextLargerContext(context.Background(), t, x)

	return value, ok
}

// NextLargerContext is NextLarger with cancellation. It returns ctx.Err()
// if ctx is done before the walk completes.
func NextLargerContext(ctx context.Context, t *core.Tree, x int) (value int, ok bool, err error) {
	_, err = bfs.BFS(t,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(n *core.Node, _ int) error {
			if n.Value > x && (!ok || n.Value < value) {
				value, ok = n.Value, true
			}
			return nil
		}),
	)
	if err != nil {
		return 0, false, err
	}

	return value, ok, nil
}
