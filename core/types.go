// Package core defines the central Node and Tree types of bintree,
// and provides read-safe primitives for querying and cloning trees.
//
// This file declares Node, Tree, sentinel errors, and the constructors.
//
// Errors:
//
//	ErrNodeNotFound - a referenced node is not part of the tree.
//	ErrSharedNode   - a node is reachable more than once (cycle or aliasing).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core tree operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node outside the tree.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSharedNode indicates a node is reachable from more than one parent,
	// or is its own ancestor.
	ErrSharedNode = errors.New("core: node reachable more than once")
)

// Node is a single element of a binary tree.
//
// A nil *Node is the absent subtree. Two nodes are the same node only if
// they are the same pointer; equal values do not make equal nodes.
type Node struct {
	// Value is the payload; placement is caller-controlled, no ordering is kept.
	Value int

	// Left is the left subtree, nil when absent.
	Left *Node

	// Right is the right subtree, nil when absent.
	Right *Node
}

// NewNode returns a node holding value with the given children.
// Either child may be nil.
func NewNode(value int, left, right *Node) *Node {
	return &Node{Value: value, Left: left, Right: right}
}

// Leaf returns a childless node.
func Leaf(value int) *Node {
	return &Node{Value: value}
}

// IsLeaf reports whether n has no children. A nil node is not a leaf.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// Tree is the aggregate that owns a root node, or nothing when empty.
//
// mu guards the root pointer only. Readers may run concurrently; SetRoot
// is exclusive. Mutating nodes reachable from the root while queries run
// is not synchronized and must be excluded by the caller.
//
// A nil *Tree behaves as an empty tree for every read method.
type Tree struct {
	mu   sync.RWMutex
	root *Node
}

// NewTree wraps root in a Tree. A nil root yields an empty tree.
// Complexity: O(1)
func NewTree(root *Node) *Tree {
	return &Tree{root: root}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root
}

// SetRoot replaces the root. The previous root is detached, not modified.
func (t *Tree) SetRoot(root *Node) {
	t.mu.Lock()
	t.root = root
	t.mu.Unlock()
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	return t.Root() == nil
}
