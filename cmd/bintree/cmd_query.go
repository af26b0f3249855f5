package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bintree/cousins"
	"github.com/katalvlaran/bintree/core"
	"github.com/katalvlaran/bintree/depth"
	"github.com/katalvlaran/bintree/dfs"
	"github.com/katalvlaran/bintree/lca"
	"github.com/katalvlaran/bintree/nextlarger"
	"github.com/katalvlaran/bintree/pathsum"
)

func (c *cli) depthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "depth TREE",
		Short: "Print the minimum and maximum depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "min=%d max=%d\n", depth.MinDepth(t), depth.MaxDepth(t))
			return err
		},
	}
}

func (c *cli) sumCommand() *cobra.Command {
	var withPath bool
	cmd := &cobra.Command{
		Use:   "sum TREE",
		Short: "Print the maximum path sum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintln(out, pathsum.MaxPathSum(t)); err != nil {
				return err
			}
			if withPath {
				_, err = fmt.Fprintln(out, dfs.Values(pathsum.MaxPath(t)))
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&withPath, "path", false, "also print the values along the best path")

	return cmd
}

func (c *cli) nextCommand() *cobra.Command {
	var than int
	cmd := &cobra.Command{
		Use:   "next TREE",
		Short: "Print the smallest value strictly greater than --than",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			v, ok, err := nextlarger.NextLargerContext(cmd.Context(), t, than)
			if err != nil {
				return err
			}
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "none")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
	cmd.Flags().IntVar(&than, "than", 0, "lower bound (exclusive)")
	_ = cmd.MarkFlagRequired("than")

	return cmd
}

// pairFlags registers the --a / --b value flags shared by cousins and lca.
func pairFlags(cmd *cobra.Command, a, b *int) {
	cmd.Flags().IntVar(a, "a", 0, "value of the first node")
	cmd.Flags().IntVar(b, "b", 0, "value of the second node")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
}

func (c *cli) cousinsCommand() *cobra.Command {
	var a, b int
	cmd := &cobra.Command{
		Use:   "cousins TREE",
		Short: "Report whether the nodes holding --a and --b are cousins",
		Long: "Report whether the nodes holding --a and --b are cousins.\n" +
			"Each value resolves to its first node in pre-order; a missing value is never a cousin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			na, okA := t.Find(a)
			nb, okB := t.Find(b)
			if !okA || !okB {
				c.log.Debug("Value not in tree", "a", a, "found_a", okA, "b", b, "found_b", okB)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cousins.AreCousins(t, na, nb))
			return err
		},
	}
	pairFlags(cmd, &a, &b)

	return cmd
}

func (c *cli) lcaCommand() *cobra.Command {
	var a, b int
	cmd := &cobra.Command{
		Use:   "lca TREE",
		Short: "Print the lowest common ancestor of the nodes holding --a and --b",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.readTree(cmd, args[0])
			if err != nil {
				return err
			}
			var n *core.Node
			if n, err = lca.LowestCommonAncestorByValue(t, a, b); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n.Value)
			return err
		},
	}
	pairFlags(cmd, &a, &b)

	return cmd
}
