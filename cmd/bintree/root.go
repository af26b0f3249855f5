package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/codec"
	"github.com/katalvlaran/bintree/core"
)

// cli carries the state shared by every subcommand.
type cli struct {
	log      *slog.Logger
	verbose  bool
	sentinel string
	codec    *codec.Codec
}

// errBadSentinel reports a --sentinel value the codec cannot use.
var errBadSentinel = errors.New("invalid sentinel")

// newRootCommand assembles the command tree. A nil log makes the command
// build a stderr text logger from --verbose before running; tests pass
// their own.
func newRootCommand(log *slog.Logger) *cobra.Command {
	c := &cli{log: log}

	root := &cobra.Command{
		Use:           "bintree",
		Short:         "Binary tree algorithms over serialized trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: "Binary tree algorithms over serialized trees.\n\n" +
			"TREE is a pre-order token stream such as \"1 2 # # 3 # #\", or \"-\" to read stdin.\n" +
			"A tree whose root is negative must follow \"--\", e.g. bintree sum -- \"-3 # #\".",
		Example: `  bintree gen random --size 12 --seed 7 | bintree depth -
  bintree sum -- "-10 9 # # 20 15 # # 7 # #"
  bintree lca "3 5 6 # # 2 7 # # 4 # # 1 0 # # 8 # #" --a 7 --b 6`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.log == nil {
				level := slog.LevelInfo
				if c.verbose {
					level = slog.LevelDebug
				}
				c.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
				slog.SetDefault(c.log)
			}
			cd, err := newCodec(c.sentinel)
			if err != nil {
				return err
			}
			c.codec = cd
			c.log.Debug("Command starting", "cmd", cmd.Name(), "sentinel", c.sentinel)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.sentinel, "sentinel", codec.DefaultSentinel, "token for an absent child")

	root.AddCommand(
		c.depthCommand(),
		c.sumCommand(),
		c.nextCommand(),
		c.cousinsCommand(),
		c.lcaCommand(),
		c.genCommand(),
	)

	return root
}

// newCodec validates sentinel up front, since the codec options panic on
// values that cannot round-trip.
func newCodec(sentinel string) (*codec.Codec, error) {
	if sentinel == "" {
		return nil, fmt.Errorf("%w: empty", errBadSentinel)
	}
	if _, err := strconv.Atoi(sentinel); err == nil {
		return nil, fmt.Errorf("%w: %q is an integer", errBadSentinel, sentinel)
	}
	if strings.Contains(sentinel, codec.DefaultDelimiter) {
		return nil, fmt.Errorf("%w: %q contains a space", errBadSentinel, sentinel)
	}

	return codec.New(codec.WithSentinel(sentinel)), nil
}

// readTree decodes the TREE argument, or stdin when it is "-".
func (c *cli) readTree(cmd *cobra.Command, arg string) (*core.Tree, error) {
	var (
		t   *core.Tree
		err error
	)
	if arg == "-" {
		t, err = c.codec.Decode(cmd.InOrStdin())
	} else {
		t, err = c.codec.Deserialize(arg)
	}
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}
	c.log.Debug("Decoded tree", "nodes", t.Size())

	return t, nil
}
