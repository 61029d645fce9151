package construct

import (
	"fmt"

	"github.com/katalvlaran/drgattacks/dag"
)

// KConnector builds the deterministic "connect to the last k predecessors"
// graph: every node v has parents {v-1, v-2, ..., v-k} ∩ [0, v). It ignores
// the PRNG entirely, since its topology is a pure function of n and k.
func KConnector(spec GraphSpec, k int) (*dag.Graph, error) {
	if spec.Size < 1 {
		return nil, fmt.Errorf("size %d: %w", spec.Size, ErrTooFewNodes)
	}
	if k < 1 {
		return nil, fmt.Errorf("k %d: %w", k, ErrInvalidDegree)
	}

	parents := make([][]int, spec.Size)
	for v := 0; v < spec.Size; v++ {
		lo := v - k
		if lo < 0 {
			lo = 0
		}
		ps := make([]int, 0, v-lo)
		for p := lo; p < v; p++ {
			ps = append(ps, p)
		}
		parents[v] = ps
	}
	return dag.New(parents, "k-connector")
}
