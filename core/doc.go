// Package core provides the binary tree data model shared by every
// bintree algorithm: Node, Tree, and a handful of read-only utilities.
//
// A tree T is a finite, acyclic structure where each node is owned by exactly
// one parent (or by the Tree, for the root):
//
//	      6
//	     / \
//	    5   5
//	       / \
//	      3   1
//	     / \
//	    2   1
//
// Why use core.Tree?
//
//   - Plain data - callers assemble trees directly from NewNode / Leaf, no
//     insertion policy and no ordering invariant is imposed.
//   - Identity-aware - Contains, and the lca and cousins packages built on
//     top, compare nodes by pointer, so two nodes holding the same value
//     stay distinct.
//   - Stack-safe - Size, Values, Contains, Find, Equal, Clone and Validate
//     walk with an explicit stack and never recurse.
//   - Read-safe - the root pointer is guarded by a sync.RWMutex, so many
//     readers may query one tree concurrently.
//
// Core API:
//
//	NewNode(value, left, right) *Node   // O(1)
//	Leaf(value) *Node                   // O(1)
//	NewTree(root) *Tree                 // O(1)
//	(*Tree).Root() / SetRoot / Empty    // O(1)
//	(*Tree).Size() / Values()           // O(n)
//	(*Tree).Contains(node) bool         // O(n), identity
//	(*Tree).Find(value) (*Node, bool)   // O(n), first in pre-order
//	(*Tree).Clone() *Tree               // O(n), deep copy
//	Equal(a, b) bool                    // O(n), shape + values
//	Validate(t) error                   // O(n), ErrSharedNode on aliasing
//
// Concurrency:
//
//	Queries never mutate nodes. Mutating nodes while another goroutine
//	queries the same tree is a data race the caller must exclude.
package core
