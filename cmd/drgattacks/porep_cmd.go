package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/construct"
	"github.com/katalvlaran/drgattacks/valiant"
)

func newPorepCmd(logger *slog.Logger, g *globalFlags) *cobra.Command {
	var (
		m             int
		ab16          bool
		depthFraction float64
	)
	cmd := &cobra.Command{
		Use:   "porep",
		Short: "Run the Valiant reducer (optionally AB16) against a MetaBucket PoRep graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := g.graphSpec("meta-bucket")
			graph, err := construct.MetaBucket(spec, m)
			if err != nil {
				return err
			}
			logger.Info("graph built", "stats", graph.Stats())

			reducer := &valiant.Reducer{AB16: ab16}
			target, err := attack.DepthTarget(depthFraction)
			if err != nil {
				return err
			}

			s, err := reducer.Run(graph, target)
			if err != nil {
				return err
			}
			logger.Info("attack complete", "size", s.Size(), "depth", graph.DepthExclude(s))
			return nil
		},
	}
	cmd.Flags().IntVar(&m, "m", 4, "parents per node")
	cmd.Flags().BoolVar(&ab16, "ab16", false, "use the AB16 residual-graph variant")
	cmd.Flags().Float64VarP(&depthFraction, "target-depth", "d", 0.1, "target depth as a fraction of n")
	return cmd
}
