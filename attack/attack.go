package attack

import (
	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// Attack reduces a graph's depth-robustness by producing an exclusion set S
// such that Target is satisfied on g - S, or reports ErrExhausted if its
// search space ran out before that happened.
//
// Implementations (package valiant, package greedy, package exchange) are
// single-threaded and deterministic: the same graph, target and
// configuration always produce a byte-identical exclusion set.
type Attack interface {
	// Kind identifies which attack family this is, for result labeling.
	Kind() Kind

	// Run computes an exclusion set against g for the given target.
	Run(g *dag.Graph, target Target) (*sets.Exclusion, error)
}
