package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bintree/core"
)

// Deserialize parses s with the default codec.
// Complexity: O(n) time, O(h) space beyond the token slice.
func Deserialize(s string) (*core.Tree, error) {
	return defaultCodec.Deserialize(s)
}

// Decode reads the whole of r and parses it with the default codec.
func Decode(r io.Reader) (*core.Tree, error) {
	return defaultCodec.Decode(r)
}

// Decode reads r to EOF and parses the stream. A single trailing newline
// ("\n" or "\r\n") is dropped first, so output piped from a shell works.
func (c *Codec) Decode(r io.Reader) (*core.Tree, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read: %w", err)
	}
	s := string(raw)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")

	return c.Deserialize(s)
}

// frame is a node whose children are still being read. right is false
// while the left child is pending.
type frame struct {
	node  *core.Node
	depth int
	right bool
}

// Deserialize parses s into a new tree. On any error the returned tree is nil.
//
// Errors:
//   - ErrMalformed: empty input, a token that is neither an integer nor the
//     sentinel, too few tokens, or tokens left over after the tree is complete.
//   - ErrTooDeep: a node deeper than the codec's MaxDepth.
func (c *Codec) Deserialize(s string) (*core.Tree, error) {
	tokens := strings.Split(s, c.delimiter)
	pos := 0
	// next returns the node for tokens[pos], nil for the sentinel.
	next := func() (*core.Node, error) {
		if pos >= len(tokens) {
			return nil, fmt.Errorf("%w: unexpected end after %d tokens", ErrMalformed, len(tokens))
		}
		tok := tokens[pos]
		pos++
		if tok == c.sentinel {
			return nil, nil
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is neither an integer nor %q",
				ErrMalformed, pos, tok, c.sentinel)
		}
		return &core.Node{Value: v}, nil
	}

	root, err := next()
	if err != nil {
		return nil, err
	}
	if root != nil {
		if err = c.checkDepth(1); err != nil {
			return nil, err
		}
		stack := []frame{{node: root, depth: 1}}
		var (
			top   *frame
			child *core.Node
		)
		for len(stack) > 0 {
			top = &stack[len(stack)-1]
			if child, err = next(); err != nil {
				return nil, err
			}
			d := top.depth
			if top.right {
				top.node.Right = child
				stack = stack[:len(stack)-1]
			} else {
				top.node.Left = child
				top.right = true
			}
			if child != nil {
				if err = c.checkDepth(d + 1); err != nil {
					return nil, err
				}
				stack = append(stack, frame{node: child, depth: d + 1})
			}
		}
	}
	if pos < len(tokens) {
		return nil, fmt.Errorf("%w: %d unused tokens after position %d",
			ErrMalformed, len(tokens)-pos, pos)
	}

	return core.NewTree(root), nil
}

func (c *Codec) checkDepth(d int) error {
	if c.maxDepth > 0 && d > c.maxDepth {
		return fmt.Errorf("%w: depth %d > %d", ErrTooDeep, d, c.maxDepth)
	}
	return nil
}
