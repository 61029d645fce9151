package valiant

import "errors"

// Sentinel errors for valiant. Callers branch with errors.Is.
var (
	// ErrInvariantViolated indicates AB16's depth-halving assertion failed:
	// an internal bug, not a recoverable condition.
	ErrInvariantViolated = errors.New("valiant: internal invariant violated")
)
