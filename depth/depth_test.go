package depth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/depth"
)

// tinyTree builds 6(5,5).
func tinyTree() *core.Tree {
	return core.NewTree(core.NewNode(6, core.Leaf(5), core.Leaf(5)))
}

// extensiveTree builds 6(5, 5(3(2,1),1)).
func extensiveTree() *core.Tree {
	d := core.NewNode(3, core.Leaf(2), core.Leaf(1))
	e := core.NewNode(5, d, core.Leaf(1))
	return core.NewTree(core.NewNode(6, core.Leaf(5), e))
}

func TestMinDepth(t *testing.T) {
	assert.Equal(t, 2, depth.MinDepth(tinyTree()), "smaller trees")
	assert.Equal(t, 2, depth.MinDepth(extensiveTree()), "more complex trees")
	assert.Equal(t, 0, depth.MinDepth(core.NewTree(nil)), "empty trees")
	assert.Equal(t, 0, depth.MinDepth(nil), "nil tree")
}

func TestMaxDepth(t *testing.T) {
	assert.Equal(t, 2, depth.MaxDepth(tinyTree()), "smaller trees")
	assert.Equal(t, 4, depth.MaxDepth(extensiveTree()), "larger trees")
	assert.Equal(t, 0, depth.MaxDepth(core.NewTree(nil)), "empty trees")
}

// TestMinDepth_SingleChild makes sure a one-child node is not a leaf.
func TestMinDepth_SingleChild(t *testing.T) {
	// 1 → 2 → 3, all on the right
	tr := core.NewTree(core.NewNode(1, nil, core.NewNode(2, nil, core.Leaf(3))))
	assert.Equal(t, 3, depth.MinDepth(tr))
	assert.Equal(t, 3, depth.MaxDepth(tr))

	// 1(2(4,#), 3(#,#)): shortest leaf path is 1-3
	tr = core.NewTree(core.NewNode(1, core.NewNode(2, core.Leaf(4), nil), core.Leaf(3)))
	assert.Equal(t, 2, depth.MinDepth(tr))
	assert.Equal(t, 3, depth.MaxDepth(tr))

	assert.Equal(t, 1, depth.MinDepth(core.NewTree(core.Leaf(9))))
}

// TestDepth_Properties checks max ≥ min on random trees and equality on perfect ones.
func TestDepth_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		tr, err := builder.Build(builder.Random(int(seed)*7), builder.WithSeed(seed))
		require.NoError(t, err)
		mn, mx := depth.MinDepth(tr), depth.MaxDepth(tr)
		assert.GreaterOrEqual(t, mx, mn, "seed %d", seed)
		assert.Positive(t, mn, "seed %d", seed)
	}
	for d := 0; d <= 8; d++ {
		tr := builder.MustBuild(builder.Perfect(d))
		assert.Equal(t, d, depth.MinDepth(tr))
		assert.Equal(t, d, depth.MaxDepth(tr))
		assert.True(t, depth.Balanced(tr))
	}
}

// TestDepth_DeepChain runs on a tree far taller than a recursive walk tolerates comfortably.
func TestDepth_DeepChain(t *testing.T) {
	const n = 1_000_000
	tr := builder.MustBuild(builder.Chain(n, builder.Zigzag))
	assert.Equal(t, n, depth.MaxDepth(tr))
	assert.Equal(t, n, depth.MinDepth(tr))
	assert.False(t, depth.Balanced(tr))
}

// avlTree builds a minimal AVL-shaped tree of the given height: the left
// subtree has height h-1 and the right h-2 at every node.
func avlTree(h int) *core.Node {
	switch h {
	case 0:
		return nil
	case 1:
		return core.Leaf(1)
	}
	return core.NewNode(h, avlTree(h-1), avlTree(h-2))
}

func TestBalanced(t *testing.T) {
	assert.True(t, depth.Balanced(core.NewTree(nil)), "empty tree")
	assert.True(t, depth.Balanced(core.NewTree(core.Leaf(1))), "single node")
	assert.True(t, depth.Balanced(tinyTree()))

	// root subtrees have heights 2 and 0
	chain := builder.MustBuild(builder.Chain(3, builder.LeftSide))
	assert.False(t, depth.Balanced(chain), "3-node chain")

	// extensiveTree: root subtrees 1 and 3
	assert.False(t, depth.Balanced(extensiveTree()))

	avl := core.NewTree(avlTree(5))
	require.Equal(t, 5, depth.MaxDepth(avl))
	require.Equal(t, 3, depth.MinDepth(avl))
	assert.True(t, depth.Balanced(avl), "every node is height-balanced although min and max differ by 2")

	// both root subtrees have height 2, but the left one is unbalanced inside
	lopsided := core.NewTree(core.NewNode(1,
		core.NewNode(2, core.NewNode(3, core.Leaf(4), nil), nil),
		core.NewNode(5, core.Leaf(6), core.NewNode(7, nil, core.Leaf(8))),
	))
	assert.False(t, depth.Balanced(lopsided))
}
