// Command bintree runs the bintree algorithms against serialized trees.
//
//	bintree gen random --size 12 --seed 7 | bintree depth -
//	bintree sum "10 2 -4 # # # -3 8 # # 100 # #"
//	bintree lca "3 5 6 # # 2 7 # # 4 # # 1 0 # # 8 # #" --a 7 --b 6
//
// Trees are read from the TREE argument, or from stdin when TREE is "-".
// A tree whose root is negative looks like a flag, so pass it after "--":
//
//	bintree sum -- "-3 # #"
//	bintree next --than 0 -- "-3 # 4 # #"
//
// Results go to stdout; logs go to stderr.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(nil).ExecuteContext(ctx); err != nil {
		slog.Error("bintree failed", "err", err)
		stop()
		os.Exit(1)
	}
}
