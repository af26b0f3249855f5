package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bintree/core"
)

// Serialize renders t with the default codec. A nil or empty tree yields "#".
// Complexity: O(n) time, O(h) space.
func Serialize(t *core.Tree) string {
	return defaultCodec.Serialize(t)
}

// Encode writes Serialize(t) to w with the default codec.
func Encode(w io.Writer, t *core.Tree) error {
	return defaultCodec.Encode(w, t)
}

// Serialize renders t as a token stream.
func (c *Codec) Serialize(t *core.Tree) string {
	var sb strings.Builder
	_ = c.write(&sb, t.Root()) // strings.Builder never fails

	return sb.String()
}

// Encode writes the token stream for t to w without a trailing delimiter
// or newline.
func (c *Codec) Encode(w io.Writer, t *core.Tree) error {
	bw := bufio.NewWriter(w)
	if err := c.write(bw, t.Root()); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: flush: %w", err)
	}

	return nil
}

// tokenWriter is the subset of bufio.Writer and strings.Builder that write needs.
type tokenWriter interface {
	WriteString(s string) (int, error)
}

// write emits root in pre-order. A nil stack entry stands for an absent
// child and is written as the sentinel.
func (c *Codec) write(w tokenWriter, root *core.Node) error {
	stack := []*core.Node{root}
	var (
		n     *core.Node
		first = true
	)
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !first {
			if _, err := w.WriteString(c.delimiter); err != nil {
				return err
			}
		}
		first = false
		if n == nil {
			if _, err := w.WriteString(c.sentinel); err != nil {
				return err
			}
			continue
		}
		if _, err := w.WriteString(strconv.Itoa(n.Value)); err != nil {
			return err
		}
		stack = append(stack, n.Right, n.Left)
	}

	return nil
}
