// Package core: read-only Tree queries.
//
// Every method here walks the tree with an explicit stack, so arbitrarily
// skewed trees are handled without growing the goroutine stack. None of them
// mutate any node.

package core

import "fmt"

// Size returns the number of nodes in the tree.
// Complexity: O(n) time, O(h) space.
func (t *Tree) Size() int {
	count := 0
	preorder(t.Root(), func(*Node) bool {
		count++
		return true
	})

	return count
}

// Values returns the node values in pre-order (node, left, right).
// An empty tree yields an empty, non-nil slice.
// Complexity: O(n)
func (t *Tree) Values() []int {
	out := make([]int, 0)
	preorder(t.Root(), func(n *Node) bool {
		out = append(out, n.Value)
		return true
	})

	return out
}

// Contains reports whether target is one of the tree's nodes.
// Membership is by identity: a different node holding the same value does
// not count. Returns false for a nil target.
// Complexity: O(n) worst case, stops at the first hit.
func (t *Tree) Contains(target *Node) bool {
	if target == nil {
		return false
	}
	found := false
	preorder(t.Root(), func(n *Node) bool {
		if n == target {
			found = true
			return false
		}
		return true
	})

	return found
}

// Find returns the first node in pre-order whose value equals v.
func (t *Tree) Find(v int) (*Node, bool) {
	var hit *Node
	preorder(t.Root(), func(n *Node) bool {
		if n.Value == v {
			hit = n
			return false
		}
		return true
	})

	return hit, hit != nil
}

// Validate checks the ownership invariant: no node is reachable twice.
// A node that is its own ancestor, or a child shared between two parents,
// yields ErrSharedNode. The walk is bounded by the number of distinct nodes,
// so a cyclic structure terminates.
// Complexity: O(n) time and space.
func Validate(t *Tree) error {
	root := t.Root()
	if root == nil {
		return nil
	}
	seen := make(map[*Node]struct{})
	stack := []*Node{root}
	var n *Node
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: value %d", ErrSharedNode, n.Value)
		}
		seen[n] = struct{}{}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}

	return nil
}

// Equal reports whether a and b have the same shape and the same value at
// every position. Node identity is ignored. Two empty trees are equal.
// Complexity: O(min(|a|, |b|))
func Equal(a, b *Tree) bool {
	return EqualNodes(a.Root(), b.Root())
}

// EqualNodes is Equal over two subtrees.
func EqualNodes(x, y *Node) bool {
	type pair struct{ x, y *Node }
	stack := []pair{{x, y}}
	var p pair
	for len(stack) > 0 {
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x == nil || p.y == nil {
			if p.x != p.y {
				return false
			}
			continue
		}
		if p.x.Value != p.y.Value {
			return false
		}
		stack = append(stack, pair{p.x.Right, p.y.Right}, pair{p.x.Left, p.y.Left})
	}

	return true
}

// preorder visits every node under root in pre-order until fn returns false.
func preorder(root *Node, fn func(*Node) bool) {
	if root == nil {
		return
	}
	stack := []*Node{root}
	var n *Node
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		// right first so left is popped first
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
}
