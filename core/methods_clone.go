// File: methods_clone.go
// Role: Deep copies of trees and subtrees.
// Concurrency:
//   - Read lock on the source root pointer only; no mutation of the source tree.

package core

// Clone returns a deep copy of the tree. The copy shares no node with the
// source, so mutating one never shows through the other.
//
// Complexity: O(n) time and space.
func (t *Tree) Clone() *Tree {
	return NewTree(CloneNode(t.Root()))
}

// CloneNode deep-copies the subtree rooted at n. Returns nil for nil.
func CloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	// Each frame pairs a source node with the copy whose children still
	// need filling in.
	type frame struct{ src, dst *Node }
	root := &Node{Value: n.Value}
	stack := []frame{{n, root}}
	var f frame
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.src.Left != nil {
			f.dst.Left = &Node{Value: f.src.Left.Value}
			stack = append(stack, frame{f.src.Left, f.dst.Left})
		}
		if f.src.Right != nil {
			f.dst.Right = &Node{Value: f.src.Right.Value}
			stack = append(stack, frame{f.src.Right, f.dst.Right})
		}
	}

	return root
}
