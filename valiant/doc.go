// Package valiant implements the Valiant bit-partition depth-reduction
// attack, and its AB16 residual-graph variant: edges are
// partitioned by the most-significant bit at which parent and child ids
// differ, and the smallest unchosen non-empty partition is absorbed into
// the exclusion set each iteration until the target predicate holds.
package valiant
