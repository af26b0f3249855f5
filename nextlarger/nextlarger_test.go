package nextlarger_test

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/nextlarger"
)

func tinyTree() *core.Tree {
	return core.NewTree(core.NewNode(6, core.Leaf(5), core.Leaf(5)))
}

func extensiveTree() *core.Tree {
	d := core.NewNode(3, core.Leaf(2), core.Leaf(1))
	return core.NewTree(core.NewNode(6, core.Leaf(5), core.NewNode(5, d, core.Leaf(1))))
}

func TestNextLarger_Simple(t *testing.T) {
	cases := []struct {
		x    int
		want int
		ok   bool
	}{
		{4, 5, true},
		{5, 6, true},
		{6, 0, false},
	}
	for _, c := range cases {
		got, ok := nextlarger.NextLarger(tinyTree(), c.x)
		assert.Equal(t, c.ok, ok, "x=%d", c.x)
		if c.ok {
			assert.Equal(t, c.want, got, "x=%d", c.x)
		}
	}
}

func TestNextLarger_Empty(t *testing.T) {
	_, ok := nextlarger.NextLarger(core.NewTree(nil), 0)
	assert.False(t, ok)
	_, ok = nextlarger.NextLarger(nil, math.MinInt)
	assert.False(t, ok)
}

func TestNextLarger_Complex(t *testing.T) {
	tr := extensiveTree()
	want := map[int]int{1: 2, 2: 3, 3: 5, 4: 5, 5: 6}
	for x, w := range want {
		got, ok := nextlarger.NextLarger(tr, x)
		require.True(t, ok, "x=%d", x)
		assert.Equal(t, w, got, "x=%d", x)
	}
	_, ok := nextlarger.NextLarger(tr, 6)
	assert.False(t, ok)

	got, ok := nextlarger.NextLarger(tr, math.MinInt)
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

// TestNextLarger_AgainstSort compares with a sorted scan on random trees.
func TestNextLarger_AgainstSort(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tr := builder.MustBuild(builder.Random(50), builder.WithSeed(seed), builder.WithValueRange(-100, 100))
		vals := tr.Values()
		sort.Ints(vals)
		for x := -105; x <= 105; x += 7 {
			i := sort.SearchInts(vals, x+1)
			got, ok := nextlarger.NextLarger(tr, x)
			if i == len(vals) {
				assert.False(t, ok, "seed %d x=%d", seed, x)
				continue
			}
			require.True(t, ok, "seed %d x=%d", seed, x)
			assert.Equal(t, vals[i], got, "seed %d x=%d", seed, x)
		}
	}
}

func TestNextLargerContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := nextlarger.NextLargerContext(ctx, extensiveTree(), 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
