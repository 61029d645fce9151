// File: reducer.go
// Role: the Valiant outer loop (ValiantDepth / ValiantSize) and its Attack
// adapter.
package valiant

import (
	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// Reducer is the Attack implementation for the Valiant bit-partition
// reducer. AB16, set true, selects the residual-graph variant (see ab16.go)
// instead of the basic absorb-smallest-partition loop.
type Reducer struct {
	AB16 bool
}

// Kind reports attack.KindValiant.
func (r *Reducer) Kind() attack.Kind { return attack.KindValiant }

// Run dispatches to the basic loop or the AB16 variant.
func (r *Reducer) Run(g *dag.Graph, target attack.Target) (*sets.Exclusion, error) {
	if r.AB16 {
		return runAB16(g, target)
	}
	return runBasic(g, target)
}

// runBasic implements the basic outer loop: initialize S=∅ and
// chosen=∅; while the predicate holds, select the smallest unchosen
// non-empty partition, mark it chosen, and insert every edge's parent
// endpoint into S. Fails with attack.ErrExhausted if no unchosen non-empty
// partition remains.
func runBasic(g *dag.Graph, target attack.Target) (*sets.Exclusion, error) {
	n := g.Size()
	buckets := partitions(g)
	chosen := make([]bool, len(buckets))
	s := sets.NewExclusion(n)

	for {
		depth := g.DepthExclude(s)
		if target.Satisfied(n, depth, s.Size()) {
			return s, nil
		}

		bit := smallestUnchosenNonEmpty(buckets, chosen)
		if bit < 0 {
			return s, attack.ErrExhausted
		}
		chosen[bit] = true
		for _, e := range buckets[bit] {
			s.Insert(e.Parent)
		}
	}
}

// smallestUnchosenNonEmpty returns the index of the smallest non-empty,
// not-yet-chosen bucket, breaking ties by lowest bit index (this module's
// resolution of the tie-break question, see DESIGN.md). Returns
// -1 if none remain.
func smallestUnchosenNonEmpty(buckets [][]sets.Edge, chosen []bool) int {
	best := -1
	for i, b := range buckets {
		if chosen[i] || len(b) == 0 {
			continue
		}
		if best < 0 || len(b) < len(buckets[best]) {
			best = i
		}
	}
	return best
}
