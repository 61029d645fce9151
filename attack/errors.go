package attack

import "errors"

// Sentinel errors for target parsing and range construction.
var (
	// ErrUnknownKind indicates a string did not match any known attack Kind.
	ErrUnknownKind = errors.New("attack: unknown attack kind")

	// ErrInvalidFraction indicates a Target fraction fell outside (0, 1].
	ErrInvalidFraction = errors.New("attack: target fraction must be in (0, 1]")

	// ErrInvalidRange indicates a TargetRange's start/end/interval were not a
	// well-formed ascending sweep.
	ErrInvalidRange = errors.New("attack: invalid target range")

	// ErrExhausted indicates an attack could not reach its target before
	// exhausting its search space (e.g. every partition bit tried, or the
	// greedy loop made no further progress).
	ErrExhausted = errors.New("attack: search space exhausted before target was reached")
)
