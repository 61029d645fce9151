package sets

import "github.com/katalvlaran/drgattacks/internal/bitvec"

// NodeSet is the in-radius scratch set the Greedy reducer maintains across
// selection iterations. It shares Exclusion's O(1) membership and size,
// but is a distinct type: it represents transient spatial exclusion during
// node selection, not the attack's final result, and may be reset between
// iterations (GreedyParams.Reset) while Exclusion only ever grows.
type NodeSet struct {
	bits *bitvec.Vec
}

// NewNodeSet allocates an empty NodeSet over node ids [0, n).
func NewNodeSet(n int) *NodeSet {
	return &NodeSet{bits: bitvec.New(n)}
}

// Insert adds v to the set. Reports whether v was newly inserted.
func (s *NodeSet) Insert(v int) bool {
	return s.bits.Set(v)
}

// Contains reports whether v is a member of s.
func (s *NodeSet) Contains(v int) bool {
	return s.bits.Test(v)
}

// Size reports the current cardinality. O(1).
func (s *NodeSet) Size() int {
	return s.bits.Count()
}

// Reset clears every member, as used when GreedyParams.Reset is set.
func (s *NodeSet) Reset() {
	s.bits.Reset()
}

// Each visits members in ascending node-id order.
func (s *NodeSet) Each(fn func(v int) bool) {
	s.bits.Each(fn)
}

// Slice returns s's members as an ascending sorted slice.
func (s *NodeSet) Slice() []int {
	return s.bits.Slice()
}
