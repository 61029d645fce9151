package snapshot

import "errors"

// Sentinel errors for snapshot. Callers branch with errors.Is.
var (
	// ErrBadMagic indicates a file did not start with the expected magic
	// number; it is not a snapshot this package wrote.
	ErrBadMagic = errors.New("snapshot: bad magic number")

	// ErrVersionMismatch indicates a file's format version is not one this
	// package knows how to decode.
	ErrVersionMismatch = errors.New("snapshot: unsupported format version")

	// ErrKeyMismatch indicates a decoded snapshot's key did not match the
	// key the caller asked to load, so it is stale or for a different spec.
	ErrKeyMismatch = errors.New("snapshot: key does not match requested graph")
)
