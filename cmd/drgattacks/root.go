package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drgattacks/construct"
)

// globalFlags carries the flags shared by every subcommand.
type globalFlags struct {
	logSize int
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "drgattacks",
		Short: "Depth-reduction attacks against depth-robust graphs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.logSize >= 50 {
				return fmt.Errorf("-k/--log-size must be < 50, got %d", g.logSize)
			}
			return nil
		},
	}
	root.PersistentFlags().IntVarP(&g.logSize, "log-size", "k", 20, "log2(n), asserted < 50")

	root.AddCommand(newGreedyCmd(logger, g))
	root.AddCommand(newPorepCmd(logger, g))
	root.AddCommand(newBaselineCmd(logger, g))
	return root
}

// graphSpec builds the GraphSpec every subcommand shares: n = 2^logSize.
func (g *globalFlags) graphSpec(algo string) construct.GraphSpec {
	n := 1 << uint(g.logSize)
	return construct.GraphSpec{Size: n, Algorithm: algo}
}
