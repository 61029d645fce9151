// File: run.go
// Role: the attack driver loop — run-major iteration
// over (graph sample, target) pairs with per-target averaging.
package driver

import (
	"math/rand"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/construct"
)

// Run executes profile against the constructor described by spec and
// params, using atk to reduce each sampled graph. It seeds one PRNG from
// spec.Seed and reuses it across every run, so successive graph samples
// differ deterministically while the whole sweep remains reproducible:
// the same (spec, params, profile) always produces byte-identical results.
func Run(spec construct.GraphSpec, params construct.Params, atk attack.Attack, profile Profile) (Result, error) {
	if err := profile.Validate(); err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(spec.Seed64()))
	sums := make([]singleSum, len(profile.Targets))

	for run := 0; run < profile.Runs; run++ {
		g, err := construct.Build(spec, params, construct.WithRand(rng))
		if err != nil {
			return Result{}, err
		}

		for ti, target := range profile.Targets {
			s, runErr := atk.Run(g, target)
			if runErr != nil {
				sums[ti].failures++
				continue
			}
			n := g.Size()
			depth := g.DepthExclude(s)
			sums[ti].depth += float64(depth) / float64(n)
			sums[ti].size += float64(s.Size()) / float64(n)
			sums[ti].ok++
		}
	}

	targets := make([]TargetResult, len(profile.Targets))
	for ti, target := range profile.Targets {
		sum := sums[ti]
		tr := TargetResult{Target: target, Failures: sum.failures}
		if sum.ok > 0 {
			tr.MeanDepth = sum.depth / float64(sum.ok)
			tr.MeanSize = sum.size / float64(sum.ok)
			if tr.MeanSize != 0 {
				tr.MeanDER = (1 - tr.MeanDepth) / tr.MeanSize
			}
		}
		targets[ti] = tr
	}

	return Result{Kind: atk.Kind(), Targets: targets}, nil
}

// singleSum accumulates one target's running totals across runs.
type singleSum struct {
	depth    float64
	size     float64
	ok       int
	failures int
}
