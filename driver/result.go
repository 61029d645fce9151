package driver

import "github.com/katalvlaran/drgattacks/attack"

// SingleResult is a single (run, target) outcome, as fractions of n.
type SingleResult struct {
	DepthFraction float64
	SizeFraction  float64
	Failed        bool
}

// TargetResult is one target's averaged outcome across every run.
type TargetResult struct {
	Target   attack.Target
	MeanDepth float64
	MeanSize  float64
	MeanDER   float64
	Failures  int
}

// Result is the full sweep outcome: one TargetResult per input target, in
// input order, plus the attack kind they were run under.
type Result struct {
	Kind    attack.Kind
	Targets []TargetResult
}
