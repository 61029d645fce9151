package sets

import "github.com/katalvlaran/drgattacks/internal/bitvec"

// Exclusion is the node set S that an attack builds and returns: every
// node an attack decides to remove from the graph. Membership and size
// are both O(1); nodes are only ever inserted, never removed, for the
// lifetime of a single attack run.
type Exclusion struct {
	bits *bitvec.Vec
}

// NewExclusion allocates an empty Exclusion over node ids [0, n).
func NewExclusion(n int) *Exclusion {
	return &Exclusion{bits: bitvec.New(n)}
}

// Insert adds v to the set. Reports whether v was newly inserted.
func (s *Exclusion) Insert(v int) bool {
	return s.bits.Set(v)
}

// Contains reports whether v is a member of s.
func (s *Exclusion) Contains(v int) bool {
	return s.bits.Test(v)
}

// Size reports |S|. O(1).
func (s *Exclusion) Size() int {
	return s.bits.Count()
}

// Each visits members in ascending node-id order.
func (s *Exclusion) Each(fn func(v int) bool) {
	s.bits.Each(fn)
}

// Clone returns an independent copy of s.
func (s *Exclusion) Clone() *Exclusion {
	return &Exclusion{bits: s.bits.Clone()}
}

// Slice returns s's members as an ascending sorted slice.
func (s *Exclusion) Slice() []int {
	return s.bits.Slice()
}
