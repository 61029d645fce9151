package construct

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/katalvlaran/drgattacks/dag"
)

// MetaBucket builds the standard PoRep DRG construction: every node v > 0
// gets its immediate predecessor v-1 as a parent, plus m-1 further parents
// drawn by a bucket sampler that favors nearby predecessors exponentially
// more than distant ones — each draw first picks a bucket (a power-of-two
// distance band) uniformly, then an offset uniformly within that band, so
// closer buckets are sampled as often as farther, wider ones even though
// they cover fewer candidate nodes.
func MetaBucket(spec GraphSpec, m int, opts ...Option) (*dag.Graph, error) {
	if spec.Size < 1 {
		return nil, fmt.Errorf("size %d: %w", spec.Size, ErrTooFewNodes)
	}
	if m < 1 {
		return nil, fmt.Errorf("m %d: %w", m, ErrInvalidDegree)
	}
	cfg := newConfig(append([]Option{WithSpec(spec)}, opts...)...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	parents := make([][]int, spec.Size)
	for v := 1; v < spec.Size; v++ {
		parents[v] = metaBucketParents(v, m, cfg.rng)
	}
	return dag.New(parents, "meta-bucket")
}

// metaBucketParents draws up to m distinct parents for node v: v-1 is
// always included; remaining draws pick a bucket b in [1, bits.Len(v)] and an
// offset in [1, 2^b], landing at v-offset (clamped to stay within [0, v)).
func metaBucketParents(v, m int, rng *rand.Rand) []int {
	if v == 0 {
		return nil
	}
	chosen := map[int]bool{v - 1: true}
	if m > v {
		m = v
	}
	maxBucket := bits.Len(uint(v))
	if maxBucket < 1 {
		maxBucket = 1
	}
	for attempts := 0; len(chosen) < m && attempts < m*32; attempts++ {
		bucket := 1 + rng.Intn(maxBucket)
		spread := 1 << uint(bucket)
		if spread > v {
			spread = v
		}
		offset := 1 + rng.Intn(spread)
		p := v - offset
		if p < 0 || p >= v {
			continue
		}
		chosen[p] = true
	}
	out := make([]int, 0, len(chosen))
	for p := range chosen {
		out = append(out, p)
	}
	return out
}
