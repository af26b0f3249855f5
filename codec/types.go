package codec

import (
	"errors"
	"strconv"
	"strings"
)

// Default token settings.
const (
	DefaultSentinel  = "#"
	DefaultDelimiter = " "
)

// Sentinel errors returned by decoding.
var (
	// ErrMalformed reports a token stream that does not describe exactly one tree.
	ErrMalformed = errors.New("codec: malformed input")

	// ErrTooDeep reports a stream describing a tree deeper than the codec's MaxDepth.
	ErrTooDeep = errors.New("codec: tree exceeds maximum depth")
)

// Codec holds the token settings for one format variant. A Codec is
// immutable after New and safe for concurrent use.
type Codec struct {
	sentinel  string
	delimiter string
	maxDepth  int // 0 = unlimited
}

// Option configures a Codec.
type Option func(*Codec)

// WithSentinel sets the token written for an absent child.
// Panics if s is empty or parses as an integer.
func WithSentinel(s string) Option {
	if s == "" {
		panic("codec: WithSentinel: sentinel must be non-empty")
	}
	if _, err := strconv.Atoi(s); err == nil {
		panic("codec: WithSentinel: sentinel " + strconv.Quote(s) + " is a valid integer")
	}
	return func(c *Codec) { c.sentinel = s }
}

// integerChars are the bytes an integer token may contain.
const integerChars = "0123456789+-"

// WithDelimiter sets the separator between tokens. Panics if d is empty or
// contains a digit or sign, which would run into the integer tokens.
func WithDelimiter(d string) Option {
	if d == "" {
		panic("codec: WithDelimiter: delimiter must be non-empty")
	}
	if strings.ContainsAny(d, integerChars) {
		panic("codec: WithDelimiter: delimiter " + strconv.Quote(d) + " contains a digit or sign")
	}
	return func(c *Codec) { c.delimiter = d }
}

// WithMaxDepth limits the depth (in nodes, root = 1) Decode accepts.
// Zero removes the limit. Panics if n is negative.
func WithMaxDepth(n int) Option {
	if n < 0 {
		panic("codec: WithMaxDepth: depth must be ≥ 0, got " + strconv.Itoa(n))
	}
	return func(c *Codec) { c.maxDepth = n }
}

// New returns a Codec with the defaults overridden by opts.
// Panics if the sentinel and delimiter could be confused when the stream is
// split back into tokens: either contains the other, or a delimiter match
// can start inside a sentinel.
func New(opts ...Option) *Codec {
	c := DefaultCodec()
	for _, opt := range opts {
		opt(c)
	}
	if err := checkTokens(c.sentinel, c.delimiter); err != "" {
		panic("codec: sentinel " + strconv.Quote(c.sentinel) + " and delimiter " +
			strconv.Quote(c.delimiter) + ": " + err)
	}

	return c
}

// checkTokens returns a reason when splitting on delim could cut a sentinel
// token apart, or an empty string when the pair is unambiguous. Integer
// tokens need no check here: WithDelimiter keeps digits and signs out of
// the delimiter.
func checkTokens(sentinel, delim string) string {
	switch {
	case strings.Contains(sentinel, delim):
		return "sentinel contains delimiter"
	case strings.Contains(delim, sentinel):
		return "delimiter contains sentinel"
	}
	// A sentinel is always followed by a delimiter (or the end). A match
	// starting k bytes before the sentinel's end needs the sentinel to end
	// with delim[:k] and delim[k:] to repeat delim's own start, as in
	// "xa" + "aa" splitting at the first "aa".
	for k := 1; k < len(delim) && k <= len(sentinel); k++ {
		if strings.HasSuffix(sentinel, delim[:k]) && delim[k:] == delim[:len(delim)-k] {
			return "delimiter can match across the end of the sentinel"
		}
	}

	return ""
}

// DefaultCodec returns the "#" / single-space codec with no depth limit.
func DefaultCodec() *Codec {
	return &Codec{sentinel: DefaultSentinel, delimiter: DefaultDelimiter}
}

// Sentinel returns the absent-child token.
func (c *Codec) Sentinel() string { return c.sentinel }

// Delimiter returns the token separator.
func (c *Codec) Delimiter() string { return c.delimiter }

var defaultCodec = DefaultCodec()
