package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/construct"
	"github.com/katalvlaran/drgattacks/driver"
	"github.com/katalvlaran/drgattacks/exchange"
	"github.com/katalvlaran/drgattacks/greedy"
	"github.com/katalvlaran/drgattacks/valiant"
)

func newBaselineCmd(logger *slog.Logger, g *globalFlags) *cobra.Command {
	var (
		uniform    bool
		runs       int
		targetDER  float64
		configPath string
		m, ner     int
	)
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Sweep a depth-target range over r independent graph samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, interval := 0.05, 0.5, 0.05
			var cfg baselineConfig
			if configPath != "" {
				var err error
				cfg, err = loadBaselineConfig(configPath)
				if err != nil {
					return err
				}
				if cfg.Start > 0 {
					start = cfg.Start
				}
				if cfg.End > 0 {
					end = cfg.End
				}
				if cfg.Interval > 0 {
					interval = cfg.Interval
				}
				if cfg.M > 0 {
					m = cfg.M
				}
				if cfg.NER > 0 {
					ner = cfg.NER
				}
			}

			kind := attack.KindValiant
			if cfg.Kind != "" {
				var err error
				kind, err = attack.ParseKind(cfg.Kind)
				if err != nil {
					return err
				}
			}

			var atk attack.Attack
			switch kind {
			case attack.KindGreedy:
				k, radius, length := cfg.GreedyK, cfg.GreedyRadius, cfg.GreedyLength
				if k == 0 {
					k = 1
				}
				if length == 0 {
					length = 2
				}
				reducer, err := greedy.New(greedy.Params{
					K: k, Radius: radius, Length: length,
					Reset: cfg.GreedyReset, UseDegree: cfg.GreedyUseDegree,
				})
				if err != nil {
					return err
				}
				atk = reducer
			case attack.KindExchange:
				atk = &exchange.Reducer{TargetDER: targetDER}
			default:
				atk = &valiant.Reducer{AB16: cfg.AB16}
			}

			algo := "meta-bucket"
			if uniform {
				algo = "uniform-graph"
			}
			spec := g.graphSpec(algo)

			targets, err := attack.TargetRange{Metric: attack.MetricDepth, Start: start, End: end, Interval: interval}.Enumerate()
			if err != nil {
				return err
			}

			profile := driver.Profile{Runs: runs, Targets: targets, Kind: kind}
			result, err := driver.Run(spec, construct.Params{M: m, NER: ner}, atk, profile)
			if err != nil {
				return err
			}

			for _, tr := range result.Targets {
				fmt.Printf("target=%.4f mean_depth=%.4f mean_size=%.4f mean_der=%.4f failures=%d\n",
					tr.Target.Fraction(), tr.MeanDepth, tr.MeanSize, tr.MeanDER, tr.Failures)
				if tr.MeanSize > 0 && (1-tr.MeanDepth)/tr.MeanSize < targetDER {
					logger.Warn("target DER not met", "target", tr.Target.Fraction())
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&uniform, "uniform-graph", "u", false, "use UniformGraph instead of MetaBucket")
	cmd.Flags().IntVarP(&runs, "runs", "r", 5, "independent graph samples per target")
	cmd.Flags().Float64VarP(&targetDER, "target-DER", "d", 1.0, "minimum acceptable DER, for the completion warning and for exchange's own admission threshold")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "optional YAML file overriding sweep defaults and selecting the attack kind (valiant/greedy/exchange)")
	cmd.Flags().IntVar(&m, "m", 4, "parents per node")
	cmd.Flags().IntVar(&ner, "ner", 2, "UniformGraph minimum edge interval")
	return cmd
}
