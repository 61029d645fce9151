package construct

import (
	"fmt"

	"github.com/katalvlaran/drgattacks/dag"
)

// Params carries the algorithm-specific knobs Build needs beyond GraphSpec,
// shared across the three constructor algorithms. Only the fields relevant
// to spec.Algorithm are read.
type Params struct {
	// M is the per-node parent count for MetaBucket and UniformGraph.
	M int
	// K is the predecessor window size for KConnector.
	K int
	// NER is UniformGraph's minimum edge-interval constraint.
	NER int
}

// Build dispatches to MetaBucket, KConnector or UniformGraph based on
// spec.Algorithm, giving every constructor a uniform build(spec, prng) ->
// Graph call shape regardless of its own extra parameters.
func Build(spec GraphSpec, p Params, opts ...Option) (*dag.Graph, error) {
	switch spec.Algorithm {
	case "meta-bucket":
		return MetaBucket(spec, p.M, opts...)
	case "k-connector":
		return KConnector(spec, p.K)
	case "uniform-graph":
		return UniformGraph(spec, p.M, p.NER, opts...)
	default:
		return nil, fmt.Errorf("construct: unknown algorithm %q", spec.Algorithm)
	}
}
