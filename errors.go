package dynarr

import "errors"

// Sentinel errors for array operations.
var (
	// ErrNegativeSize indicates a size request below zero.
	ErrNegativeSize = errors.New("dynarr: size must be non-negative")
	// ErrNotCopyable indicates a duplicate-requiring operation on an element
	// type whose Funcs table has no Copy hook.
	ErrNotCopyable = errors.New("dynarr: element type is not copyable")
)
