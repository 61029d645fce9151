// Package snapshot implements the optional binary graph persistence
// Typical use: memoizing an expensive construct.Build result,
// keyed by (algorithm, n, seed, degree), so repeated benchmark runs over
// the same GraphSpec skip reconstruction.
//
// The on-disk format is a small fixed-header binary encoding via
// encoding/binary, in the style of codahale/thyrse's wire-format helpers,
// generalized from fixed-size cryptographic records to a variable-length
// parent-list record.
package snapshot
