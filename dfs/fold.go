package dfs

import "github.com/katalvlaran/bintree/core"

// Fold aggregates t bottom-up: every absent subtree contributes empty, and
// every node contributes combine(node, leftResult, rightResult). The value
// computed for the root is returned; an empty tree returns empty.
//
// Fold is an explicit-stack post-order walk, so it handles trees of any
// height. Only the context option is honored; hooks, MaxDepth and
// FilterChild would make the aggregate ill-defined and are ignored.
//
// Complexity: O(n) time, O(h) space.
func Fold[T any](t *core.Tree, empty T, combine func(n *core.Node, left, right T) T, opts ...Option) (T, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return empty, o.err
	}

	root := t.Root()
	if root == nil {
		return empty, nil
	}

	type item struct {
		node     *core.Node
		expanded bool
	}
	stack := []item{{node: root}}
	vals := make([]T, 0)
	var (
		top         *item
		left, right T
		n           *core.Node
	)
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return empty, o.Ctx.Err()
		default:
		}

		top = &stack[len(stack)-1]
		if top.node == nil {
			stack = stack[:len(stack)-1]
			vals = append(vals, empty)
			continue
		}
		if !top.expanded {
			top.expanded = true
			n = top.node
			// right below left: left is folded first, so its value sits
			// deeper on vals.
			stack = append(stack, item{node: n.Right}, item{node: n.Left})
			continue
		}

		n = top.node
		stack = stack[:len(stack)-1]
		right = vals[len(vals)-1]
		left = vals[len(vals)-2]
		vals = vals[:len(vals)-2]
		vals = append(vals, combine(n, left, right))
	}

	return vals[0], nil
}
