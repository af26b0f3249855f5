package codec_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bintree/builder"
	"github.com/katalvlaran/bintree/codec"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/depth"
)

// sample builds 1(2, 3(4,5)).
func sample() *core.Tree {
	return core.NewTree(core.NewNode(1, core.Leaf(2), core.NewNode(3, core.Leaf(4), core.Leaf(5))))
}

func TestSerialize(t *testing.T) {
	assert.Equal(t, "1 2 # # 3 4 # # 5 # #", codec.Serialize(sample()))
	assert.Equal(t, "#", codec.Serialize(core.NewTree(nil)))
	assert.Equal(t, "#", codec.Serialize(nil))
	assert.Equal(t, "-7 # #", codec.Serialize(core.NewTree(core.Leaf(-7))))
	// left-only and right-only children keep their side
	assert.Equal(t, "1 2 # # #", codec.Serialize(core.NewTree(core.NewNode(1, core.Leaf(2), nil))))
	assert.Equal(t, "1 # 2 # #", codec.Serialize(core.NewTree(core.NewNode(1, nil, core.Leaf(2)))))
}

func TestSerialize_Pure(t *testing.T) {
	tr := sample()
	before := tr.Clone()
	first := codec.Serialize(tr)
	second := codec.Serialize(tr)
	assert.Equal(t, first, second)
	assert.True(t, core.Equal(before, tr), "Serialize must not mutate the tree")

	// equal trees, different nodes: identical bytes
	assert.Equal(t, first, codec.Serialize(before))
}

func TestDeserialize(t *testing.T) {
	tr, err := codec.Deserialize("1 2 # # 3 4 # # 5 # #")
	require.NoError(t, err)
	assert.True(t, core.Equal(sample(), tr))

	tr, err = codec.Deserialize("#")
	require.NoError(t, err)
	assert.True(t, tr.Empty())

	tr, err = codec.Deserialize("-3 # 12 # #")
	require.NoError(t, err)
	assert.Equal(t, -3, tr.Root().Value)
	assert.Nil(t, tr.Root().Left)
	assert.Equal(t, 12, tr.Root().Right.Value)
}

func TestDeserialize_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"missing children":  "1",
		"half children":     "1 #",
		"not an integer":    "x # #",
		"float":             "1.5 # #",
		"leftover":          "1 # # 2",
		"leftover sentinel": "# #",
		"double delimiter":  "1  # #",
		"trailing space":    "1 # # ",
		"leading space":     " 1 # #",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			tr, err := codec.Deserialize(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, codec.ErrMalformed)
			assert.Nil(t, tr, "no partial tree on error")
		})
	}
}

func TestRoundTrip_Builders(t *testing.T) {
	trees := map[string]*core.Tree{
		"perfect": builder.MustBuild(builder.Perfect(6)),
		"chain":   builder.MustBuild(builder.Chain(500, builder.Zigzag)),
		"single":  builder.MustBuild(builder.Complete(1)),
		"empty":   builder.MustBuild(builder.Complete(0)),
	}
	for seed := int64(1); seed <= 20; seed++ {
		tr, err := builder.Build(builder.Random(int(seed)*13),
			builder.WithSeed(seed), builder.WithValueRange(-1000, 1000))
		require.NoError(t, err)
		trees[fmt.Sprintf("random/%d", seed)] = tr
	}
	for name, tr := range trees {
		t.Run(name, func(t *testing.T) {
			back, err := codec.Deserialize(codec.Serialize(tr))
			require.NoError(t, err)
			assert.True(t, core.Equal(tr, back))
		})
	}
}

// TestRoundTrip_DeepChain exercises the explicit stacks on a chain far deeper
// than a recursive codec could handle comfortably.
func TestRoundTrip_DeepChain(t *testing.T) {
	tr := builder.MustBuild(builder.Chain(200_000, builder.RightSide))
	back, err := codec.Deserialize(codec.Serialize(tr))
	require.NoError(t, err)
	assert.Equal(t, 200_000, depth.MaxDepth(back))
}

func TestCodec_Options(t *testing.T) {
	c := codec.New(codec.WithSentinel("null"), codec.WithDelimiter(","))
	assert.Equal(t, "null", c.Sentinel())
	assert.Equal(t, ",", c.Delimiter())

	s := c.Serialize(sample())
	assert.Equal(t, "1,2,null,null,3,4,null,null,5,null,null", s)
	back, err := c.Deserialize(s)
	require.NoError(t, err)
	assert.True(t, core.Equal(sample(), back))

	// the default sentinel means nothing to this codec
	_, err = c.Deserialize("1,#,#")
	assert.ErrorIs(t, err, codec.ErrMalformed)
}

func TestCodec_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { codec.WithSentinel("") })
	assert.Panics(t, func() { codec.WithSentinel("42") })
	assert.Panics(t, func() { codec.WithDelimiter("") })
	assert.Panics(t, func() { codec.WithMaxDepth(-1) })
	assert.Panics(t, func() { codec.New(codec.WithSentinel("a b")) })
	assert.NotPanics(t, func() { codec.New(codec.WithSentinel("a b"), codec.WithDelimiter(",")) })

	// delimiters that would run into integer tokens
	for _, d := range []string{"-", "+", "0", "7", ", 1", "x-"} {
		assert.Panics(t, func() { codec.WithDelimiter(d) }, "delimiter %q", d)
	}

	// sentinel and delimiter that could be confused on split
	assert.Panics(t, func() { codec.New(codec.WithSentinel("a"), codec.WithDelimiter("aa")) })
	assert.Panics(t, func() { codec.New(codec.WithSentinel("#"), codec.WithDelimiter(" # ")) })
	assert.Panics(t, func() { codec.New(codec.WithSentinel("xa"), codec.WithDelimiter("aa")) })
	assert.NotPanics(t, func() { codec.New(codec.WithSentinel("ba"), codec.WithDelimiter("ab")) })
}

// TestCodec_AcceptedOptionsRoundTrip checks that every accepted sentinel and
// delimiter pair decodes what it encodes, negative values included.
func TestCodec_AcceptedOptionsRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"#", " "}, {"null", ","}, {"ba", "ab"}, {"~", "::"}, {"-", " "}, {"x", "\n"},
	}
	trees := []*core.Tree{
		core.NewTree(core.Leaf(-3)),
		core.NewTree(core.Leaf(10)),
		core.NewTree(core.Leaf(1)),
		builder.MustBuild(builder.Random(40), builder.WithSeed(5), builder.WithValueRange(-100, 100)),
	}
	for _, p := range pairs {
		c := codec.New(codec.WithSentinel(p[0]), codec.WithDelimiter(p[1]))
		for _, tr := range trees {
			s := c.Serialize(tr)
			back, err := c.Deserialize(s)
			require.NoError(t, err, "sentinel %q delimiter %q stream %q", p[0], p[1], s)
			assert.True(t, core.Equal(tr, back), "sentinel %q delimiter %q", p[0], p[1])
		}
	}
}

func TestCodec_MaxDepth(t *testing.T) {
	c := codec.New(codec.WithMaxDepth(3))

	_, err := c.Deserialize("1 2 # # 3 4 # # 5 # #")
	require.NoError(t, err, "depth 3 is allowed")

	tr, err := c.Deserialize("1 2 3 4 # # # # #")
	assert.ErrorIs(t, err, codec.ErrTooDeep)
	assert.False(t, errors.Is(err, codec.ErrMalformed))
	assert.Nil(t, tr)

	_, err = codec.New(codec.WithMaxDepth(0)).Deserialize("1 2 3 4 # # # # #")
	assert.NoError(t, err, "zero means unlimited")
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, sample()))
	assert.Equal(t, "1 2 # # 3 4 # # 5 # #", buf.String())

	tr, err := codec.Decode(strings.NewReader(buf.String() + "\n"))
	require.NoError(t, err)
	assert.True(t, core.Equal(sample(), tr))

	tr, err = codec.Decode(strings.NewReader("1 # #\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Size())

	_, err = codec.Decode(strings.NewReader("1 # #\n\n"))
	assert.ErrorIs(t, err, codec.ErrMalformed, "only one trailing newline is dropped")
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errWrite }

func TestEncodeDecode_IOErrors(t *testing.T) {
	err := codec.Encode(failingWriter{}, sample())
	assert.ErrorIs(t, err, errWrite)

	_, err = codec.Decode(failingReader{})
	assert.ErrorIs(t, err, errWrite)
}
