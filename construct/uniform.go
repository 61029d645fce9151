package construct

import (
	"fmt"

	"github.com/katalvlaran/drgattacks/dag"
)

// UniformGraph builds a graph where every node draws m parents uniformly
// at random, subject to a minimum edge-interval constraint: a candidate
// parent p for node v is eligible only if v-p >= ner (the "no-edge radius").
// A node with no eligible candidate (v < ner) has the constraint dropped and
// draws from all of [0, v). A node with at least one but fewer than m
// eligible candidates keeps the constraint and gets only those, so it ends
// up with fewer than m parents.
func UniformGraph(spec GraphSpec, m, ner int, opts ...Option) (*dag.Graph, error) {
	if spec.Size < 1 {
		return nil, fmt.Errorf("size %d: %w", spec.Size, ErrTooFewNodes)
	}
	if m < 1 {
		return nil, fmt.Errorf("m %d: %w", m, ErrInvalidDegree)
	}
	if ner < 0 {
		return nil, fmt.Errorf("ner %d: %w", ner, ErrInvalidDegree)
	}
	cfg := newConfig(append([]Option{WithSpec(spec)}, opts...)...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	parents := make([][]int, spec.Size)
	for v := 0; v < spec.Size; v++ {
		hi := v - ner
		if hi < 0 {
			hi = v // constraint cannot be honored this close to the origin; relax it entirely
		} else {
			hi++ // candidates are [0, hi)
		}
		if hi > v {
			hi = v // ner == 0: a node is never its own parent
		}
		candidates := make([]int, hi)
		for i := range candidates {
			candidates[i] = i
		}
		cfg.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		take := m
		if take > len(candidates) {
			take = len(candidates)
		}
		parents[v] = append([]int(nil), candidates[:take]...)
	}
	return dag.New(parents, "uniform-graph")
}
