package cousins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/cousins"
)

// CousinsSuite exercises the cousin test on
//
//	      1
//	    /   \
//	   2     3
//	  / \   / \
//	 4   5 6   7
type CousinsSuite struct {
	suite.Suite
	tree  *core.Tree
	nodes map[int]*core.Node
}

func (s *CousinsSuite) SetupTest() {
	n7, n6, n5, n4 := core.Leaf(7), core.Leaf(6), core.Leaf(5), core.Leaf(4)
	n3 := core.NewNode(3, n6, n7)
	n2 := core.NewNode(2, n4, n5)
	n1 := core.NewNode(1, n2, n3)
	s.tree = core.NewTree(n1)
	s.nodes = map[int]*core.Node{1: n1, 2: n2, 3: n3, 4: n4, 5: n5, 6: n6, 7: n7}
}

// TestCousins mirrors the reference fixture.
func (s *CousinsSuite) TestCousins() {
	n := s.nodes
	s.True(cousins.AreCousins(s.tree, n[4], n[6]))
	s.True(cousins.AreCousins(s.tree, n[4], n[7]))
	s.True(cousins.AreCousins(s.tree, n[5], n[6]))
	s.True(cousins.AreCousins(s.tree, n[5], n[7]))
	s.False(cousins.AreCousins(s.tree, n[2], n[3]), "siblings at depth 1")
	s.False(cousins.AreCousins(s.tree, n[4], n[5]), "siblings")
	s.False(cousins.AreCousins(s.tree, n[6], n[7]), "siblings")
	s.False(cousins.AreCousins(s.tree, n[4], n[3]), "different depths")
	s.False(cousins.AreCousins(s.tree, n[1], n[3]), "root")
}

// TestSymmetric checks every ordered pair.
func (s *CousinsSuite) TestSymmetric() {
	for _, a := range s.nodes {
		for _, b := range s.nodes {
			s.Equal(cousins.AreCousins(s.tree, a, b), cousins.AreCousins(s.tree, b, a))
		}
	}
}

// TestNeverOwnCousin covers a == b.
func (s *CousinsSuite) TestNeverOwnCousin() {
	for _, a := range s.nodes {
		s.False(cousins.AreCousins(s.tree, a, a))
	}
}

// TestAbsentNodes treats foreign and nil nodes as non-cousins.
func (s *CousinsSuite) TestAbsentNodes() {
	foreign := core.Leaf(6)
	s.False(cousins.AreCousins(s.tree, s.nodes[4], foreign))
	s.False(cousins.AreCousins(s.tree, core.Leaf(1), core.Leaf(2)))
	s.False(cousins.AreCousins(s.tree, nil, s.nodes[6]))
	s.False(cousins.AreCousins(core.NewTree(nil), s.nodes[4], s.nodes[6]))
}

func (s *CousinsSuite) TestFindDepthAndParent() {
	d, p, ok := cousins.FindDepthAndParent(s.tree, s.nodes[6])
	s.Require().True(ok)
	s.Equal(2, d)
	s.Same(s.nodes[3], p)

	_, _, ok = cousins.FindDepthAndParent(s.tree, s.nodes[1])
	s.False(ok, "root has no parent")
	_, _, ok = cousins.FindDepthAndParent(s.tree, core.Leaf(6))
	s.False(ok)
	_, _, ok = cousins.FindDepthAndParent(s.tree, nil)
	s.False(ok)
}

func (s *CousinsSuite) TestOf() {
	got := cousins.Of(s.tree, s.nodes[5])
	s.Require().Len(got, 2)
	s.Same(s.nodes[6], got[0])
	s.Same(s.nodes[7], got[1])
	s.Empty(cousins.Of(s.tree, s.nodes[2]))
	s.Nil(cousins.Of(s.tree, s.nodes[1]))
	s.Nil(cousins.Of(s.tree, core.Leaf(5)))
}

func TestCousinsSuite(t *testing.T) {
	suite.Run(t, new(CousinsSuite))
}

// TestCousins_UnevenTree covers equal depth reached through different shapes.
func TestCousins_UnevenTree(t *testing.T) {
	//      1
	//     / \
	//    2   3
	//     \   \
	//      4   5
	four, five := core.Leaf(4), core.Leaf(5)
	tr := core.NewTree(core.NewNode(1, core.NewNode(2, nil, four), core.NewNode(3, nil, five)))
	require.True(t, cousins.AreCousins(tr, four, five))
	assert.False(t, cousins.AreCousins(tr, four, tr.Root().Right))
}
