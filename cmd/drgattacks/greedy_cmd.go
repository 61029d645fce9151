package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/construct"
	"github.com/katalvlaran/drgattacks/greedy"
)

func newGreedyCmd(logger *slog.Logger, g *globalFlags) *cobra.Command {
	var (
		m, k, radius, length int
		reset, useDegree     bool
		depthFraction        float64
	)
	cmd := &cobra.Command{
		Use:   "greedy",
		Short: "Run the incident-path-count greedy reducer against a MetaBucket graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := g.graphSpec("meta-bucket")
			graph, err := construct.MetaBucket(spec, m)
			if err != nil {
				return err
			}
			logger.Info("graph built", "stats", graph.Stats())

			reducer, err := greedy.New(greedy.Params{
				K: k, Radius: radius, Length: length, Reset: reset, UseDegree: useDegree,
			})
			if err != nil {
				return err
			}
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
	cmd.Flags().IntVar(&k, "k", 1, "admissions per iteration")
	cmd.Flags().IntVar(&radius, "radius", 0, "spatial exclusion radius")
	cmd.Flags().IntVar(&length, "length", 2, "path-count length bound")
	cmd.Flags().BoolVar(&reset, "reset", false, "reset in-radius set between iterations")
	cmd.Flags().BoolVar(&useDegree, "use-degree", false, "use degree-mode counting instead of path mode")
	cmd.Flags().Float64VarP(&depthFraction, "target-depth", "d", 0.1, "target depth as a fraction of n")
	return cmd
}
