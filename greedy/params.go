package greedy

import "fmt"

// Params configures a greedy Reducer.
type Params struct {
	// K is how many nodes are admitted into S per outer-loop iteration when
	// Radius > 0; with Radius 0 exactly one node is admitted per iteration.
	K int
	// Radius bounds the spatial exclusion walk after each admission; 0
	// disables it (the radius-0 fast path admits the single top candidate
	// unconditionally).
	Radius int
	// Length is the path-length bound ℓ used by count_paths in path mode.
	Length int
	// Reset clears the in-radius set at the end of every outer iteration,
	// so spatial exclusion only constrains picks made within one
	// iteration, not across the whole run.
	Reset bool
	// IterTopK changes append_removal's stop condition: false (default)
	// walks the ranked list until K candidates have been inserted,
	// skipping any already in-radius for free; true walks at most K
	// candidates total, inserted or skipped, so a heavily clustered
	// ranking can yield fewer than K insertions in one call.
	IterTopK bool
	// UseDegree switches count_paths to degree mode.
	UseDegree bool
}

// Validate checks p's fields are within the ranges a Reducer requires.
func (p Params) Validate() error {
	if p.K < 1 {
		return fmt.Errorf("k=%d: %w", p.K, ErrInvalidParams)
	}
	if p.Radius < 0 {
		return fmt.Errorf("radius=%d: %w", p.Radius, ErrInvalidParams)
	}
	if p.Length < 1 {
		return fmt.Errorf("length=%d: %w", p.Length, ErrInvalidParams)
	}
	return nil
}

// effectiveK returns the per-iteration admission count for a size target of
// bound s: min(K, ceil(0.01*s)), the size-variant's admission rate.
func (p Params) effectiveK(sizeBound int) int {
	ceiling := (sizeBound + 99) / 100
	if ceiling < 1 {
		ceiling = 1
	}
	if p.K < ceiling {
		return p.K
	}
	return ceiling
}
