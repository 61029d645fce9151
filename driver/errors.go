package driver

import "errors"

// ErrEmptyTargetRange indicates an AttackProfile's target list was empty:
// an invalid-configuration error the driver reports before building any
// graph.
var ErrEmptyTargetRange = errors.New("driver: target range is empty")

// ErrInvalidRuns indicates AttackProfile.Runs was non-positive.
var ErrInvalidRuns = errors.New("driver: runs must be positive")
