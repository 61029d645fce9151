package valiant

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/drgattacks/attack"
	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// runAB16 implements the AB16 variant: a residual graph is
// maintained and re-partitioned every iteration, rather than partitioning
// the original graph once. Each iteration bounds the chosen partition's
// size by m/k (m = residual edge count, k = ceil(log2(next power of two
// >= current depth))), so the resulting depth is guaranteed to at least
// halve; that guarantee is checked as an internal assertion.
//
// This implementation materializes the residual graph via dag.Remove each
// iteration rather than a (Graph, excluded-set) view, trading the memory
// refactor worth considering for the simpler, behavior-equivalent
// representation dag.Graph already provides.
func runAB16(g *dag.Graph, target attack.Target) (*sets.Exclusion, error) {
	n := g.Size()
	s := sets.NewExclusion(n)
	cur := g

	for {
		d := cur.Depth()
		if target.Satisfied(n, d, s.Size()) {
			return s, nil
		}

		buckets := partitions(cur)
		m := edgeCount(buckets)
		dPrime := nextPowerOfTwo(d)
		k := bits.Len(uint(dPrime - 1))
		if k < 1 {
			k = 1
		}
		maxSize := m / k

		bit := smallestNonEmptyWithinBound(buckets, maxSize)
		if bit < 0 {
			return s, attack.ErrExhausted
		}

		excluded := sets.NewEdgeSet()
		partial := sets.NewExclusion(cur.Size())
		for _, e := range buckets[bit] {
			excluded.Insert(e)
			partial.Insert(e.Parent)
		}

		if got := cur.DepthExcludeEdges(excluded); got > dPrime/2 {
			return s, fmt.Errorf("iteration depth %d exceeds d'/2=%d: %w", got, dPrime/2, ErrInvariantViolated)
		}

		for v := 0; v < cur.Size(); v++ {
			if partial.Contains(v) {
				s.Insert(v)
			}
		}
		cur = cur.Remove(partial)
	}
}

// edgeCount sums the edges held across every bucket.
func edgeCount(buckets [][]sets.Edge) int {
	total := 0
	for _, b := range buckets {
		total += len(b)
	}
	return total
}

// smallestNonEmptyWithinBound returns the smallest non-empty bucket whose
// size does not exceed maxSize, or -1 if none qualifies.
func smallestNonEmptyWithinBound(buckets [][]sets.Edge, maxSize int) int {
	best := -1
	for i, b := range buckets {
		if len(b) == 0 || len(b) > maxSize {
			continue
		}
		if best < 0 || len(b) < len(buckets[best]) {
			best = i
		}
	}
	return best
}

// nextPowerOfTwo returns the smallest power of two >= d, with a floor of 1.
func nextPowerOfTwo(d int) int {
	if d <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(d-1)))
}
