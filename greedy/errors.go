package greedy

import "errors"

// Sentinel errors for greedy. Callers branch with errors.Is.
var (
	// ErrInvalidParams indicates GreedyParams had a non-positive k, length,
	// or a negative radius.
	ErrInvalidParams = errors.New("greedy: invalid parameters")

	// ErrSaturated indicates the reset=true loop made no further progress
	// (the in-radius set grew to cover every surviving node) before the
	// target was reached even after every node saturates at count zero.
	ErrSaturated = errors.New("greedy: no further progress possible, target not reached")
)
