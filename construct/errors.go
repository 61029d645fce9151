package construct

import "errors"

// Sentinel errors for construct. Callers branch with errors.Is.
var (
	// ErrTooFewNodes indicates a requested graph size was below the minimum
	// the chosen algorithm needs to produce a well-formed DAG.
	ErrTooFewNodes = errors.New("construct: too few nodes")

	// ErrInvalidDegree indicates a per-node parent count (m, k) was
	// non-positive or otherwise out of range for the algorithm.
	ErrInvalidDegree = errors.New("construct: invalid degree parameter")

	// ErrNeedRandSource indicates a stochastic constructor (MetaBucket,
	// UniformGraph) was invoked without a seeded PRNG resolved in the
	// config.
	ErrNeedRandSource = errors.New("construct: rng is required")
)
