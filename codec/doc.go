// Package codec converts a core.Tree to and from a flat textual token stream.
//
// Format:
//
//	tokens   := token (DELIM token)*
//	token    := INTEGER | SENTINEL
//	order    := strict pre-order (node, left subtree, right subtree)
//
// Every absent child is written as the sentinel, so the stream alone fixes
// the shape of the tree. The defaults are "#" for the sentinel and a single
// space for the delimiter:
//
//	    1
//	   / \
//	  2   3          →   "1 2 # # 3 4 # # 5 # #"
//	     / \
//	    4   5
//
// The empty tree serializes to a single sentinel, "#".
//
// Guarantees:
//
//   - Round trip: Deserialize(Serialize(t)) is Equal to t for every tree.
//   - Purity: Serialize never mutates its input and yields identical bytes
//     for Equal trees.
//   - Strictness: a stream that ends early, has a non-integer token, an
//     empty token (doubled delimiter) or tokens after the tree is complete
//     fails with ErrMalformed. No partial tree is ever returned.
//
// Both directions walk with an explicit stack, so chain-shaped trees of any
// height are handled. WithMaxDepth caps the depth accepted on decode and
// reports ErrTooDeep beyond it.
//
// Usage:
//
//	s := codec.Serialize(t)
//	t2, err := codec.Deserialize(s)
//
//	c := codec.New(codec.WithSentinel("null"), codec.WithDelimiter(","))
//	s = c.Serialize(t)                 // "1,2,null,null,3,null,null"
//	err = c.Encode(os.Stdout, t)
//	t3, err := c.Decode(os.Stdin)      // one trailing newline is tolerated
package codec
