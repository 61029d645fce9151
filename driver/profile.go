package driver

import "github.com/katalvlaran/drgattacks/attack"

// Profile is a fully-specified sweep: targets, run count, attack kind.
type Profile struct {
	// Runs is r, the number of independent graph samples per target.
	Runs int
	// Targets is T, the list of targets to sweep, in input order.
	Targets []attack.Target
	// Kind labels the attack family for result reporting.
	Kind attack.Kind
}

// Validate checks p is well-formed before any graph is built.
func (p Profile) Validate() error {
	if p.Runs < 1 {
		return ErrInvalidRuns
	}
	if len(p.Targets) == 0 {
		return ErrEmptyTargetRange
	}
	return nil
}
