package valiant

import (
	"math/bits"

	"github.com/katalvlaran/drgattacks/dag"
	"github.com/katalvlaran/drgattacks/sets"
)

// partitions buckets every edge of g by the index of the most-significant
// bit at which its parent and child ids differ. It is a pure function of
// g: every edge appears in exactly one bucket.
// Buckets are returned dense and ascending by bit index, up to
// ceil(log2(n)) entries; empty buckets are present as empty slices so
// callers can index by bit directly.
func partitions(g *dag.Graph) [][]sets.Edge {
	nbits := bitsize(g.Size())
	buckets := make([][]sets.Edge, nbits)
	g.ForEachEdge(func(e sets.Edge) bool {
		bit := bits.Len(uint(e.Parent)^uint(e.Child)) - 1
		buckets[bit] = append(buckets[bit], e)
		return true
	})
	return buckets
}

// bitsize returns ceil(log2(n)), at least 1.
func bitsize(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n - 1))
}
