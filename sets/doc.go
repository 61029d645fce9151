// Package sets provides the compact node- and edge-membership structures
// shared by every depth-reduction attack: Edge (an ordered (parent, child)
// pair with its derived attributes), Exclusion (the node set S an attack
// builds and returns), NodeSet (the in-radius scratch set Greedy maintains
// between iterations), and EdgeSet (a small set of Edge values, used for
// witness paths and the AB16 variant's excluded edges).
//
// Exclusion and NodeSet are built on internal/bitvec so that Size is O(1)
// and membership is O(1), as required for graphs with n in the low
// millions. EdgeSet is expected to stay small (bounded by path length or
// attack iteration count) and is backed by a plain Go map.
package sets
