package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/builder"
)

var errUnknownShape = errors.New("unknown shape")

// shapes maps a gen argument to its constructor. For perfect, size is the
// number of levels; for the rest it is the node count.
var shapes = map[string]func(size int) builder.Constructor{
	"perfect":  builder.Perfect,
	"complete": builder.Complete,
	"chain":    func(n int) builder.Constructor { return builder.Chain(n, builder.LeftSide) },
	"zigzag":   func(n int) builder.Constructor { return builder.Chain(n, builder.Zigzag) },
	"random":   builder.Random,
}

func (c *cli) genCommand() *cobra.Command {
	var (
		size   int
		seed   int64
		lo, hi int
	)
	cmd := &cobra.Command{
		Use:       "gen perfect|complete|chain|zigzag|random",
		Short:     "Generate a tree and print it serialized",
		Long:      "Generate a tree and print it serialized.\nFor perfect, --size is the number of levels; otherwise it is the node count.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"perfect", "complete", "chain", "zigzag", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, ok := shapes[args[0]]
			if !ok {
				return fmt.Errorf("%w %q (want one of %s)", errUnknownShape, args[0],
					strings.Join(cmd.ValidArgs, ", "))
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
				if lo > hi {
					return fmt.Errorf("--min %d is greater than --max %d", lo, hi)
				}
				opts = append(opts, builder.WithValueRange(lo, hi))
			}
			t, err := builder.Build(shape(size), opts...)
			if err != nil {
				return err
			}
			c.log.Debug("Generated tree", "shape", args[0], "size", size, "seed", seed, "nodes", t.Size())

			if err = c.codec.Encode(cmd.OutOrStdout(), t); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 7, "node count, or levels for perfect")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&lo, "min", 0, "smallest random value (enables random values)")
	cmd.Flags().IntVar(&hi, "max", 100, "largest random value (enables random values)")

	return cmd
}
