package dag

import "errors"

// Sentinel errors for Graph construction. Callers branch with errors.Is;
// messages are never matched as strings.
var (
	// ErrParentNotBefore indicates a listed parent id was not strictly less
	// than its child's id, violating the topological-order invariant.
	ErrParentNotBefore = errors.New("dag: parent id must be less than child id")

	// ErrDuplicateParent indicates the same parent id appeared twice in one
	// node's parent list.
	ErrDuplicateParent = errors.New("dag: duplicate parent id")
)
