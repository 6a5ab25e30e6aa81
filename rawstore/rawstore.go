package rawstore

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

// Sentinel errors for block allocation.
var (
	// ErrNegativeCapacity indicates a capacity request below zero.
	ErrNegativeCapacity = errors.New("rawstore: capacity must be non-negative")
	// ErrCapacityOverflow indicates the requested slot count cannot be addressed.
	ErrCapacityOverflow = errors.New("rawstore: capacity exceeds addressable element count")
)

// Block owns storage for a fixed number of slots of T. It tracks capacity
// only; it never knows which slots hold live values and never runs element
// lifetime code. The zero value is an empty block of capacity 0.
//
// A Block must not be copied: two copies would alias the same buffer and
// both claim ownership. Transfer ownership with Swap instead.
type Block[T any] struct {
	buf []T
}

// New reserves storage for capacity slots of T. Capacity 0 allocates
// nothing. On error no storage is acquired.
func New[T any](capacity int) (Block[T], error) {
	if capacity < 0 {
		return Block[T]{}, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	if capacity == 0 {
		return Block[T]{}, nil
	}
	var zero T
	if esz := int(unsafe.Sizeof(zero)); esz > 0 && capacity > math.MaxInt/esz {
		return Block[T]{}, fmt.Errorf("%w: %d slots of %d bytes", ErrCapacityOverflow, capacity, esz)
	}
	return Block[T]{buf: make([]T, capacity)}, nil
}

// Cap returns the number of slots the block can hold.
func (b *Block[T]) Cap() int { return len(b.buf) }

// Base returns the address of slot 0, or nil for an empty block.
func (b *Block[T]) Base() *T {
	if len(b.buf) == 0 {
		return nil
	}
	return &b.buf[0]
}

// Slot returns the address of slot i. The slot may or may not hold a live
// value; that is the caller's bookkeeping. Panics when i is outside
// [0, Cap()) — out-of-range slot math is a caller bug, not a runtime error.
func (b *Block[T]) Slot(i int) *T {
	if i < 0 || i >= len(b.buf) {
		panic(fmt.Sprintf("rawstore: slot %d out of range [0,%d)", i, len(b.buf)))
	}
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(&b.buf[0]), uintptr(i)*unsafe.Sizeof(zero)))
}

// Swap exchanges buffer and capacity with other in O(1). No slot is read or
// written; the caller must have settled every live value beforehand.
func (b *Block[T]) Swap(other *Block[T]) {
	b.buf, other.buf = other.buf, b.buf
}

// Release drops the buffer, leaving an empty block of capacity 0. Slots are
// not inspected: callers destroy live values first so nothing they reference
// stays reachable through the buffer.
func (b *Block[T]) Release() {
	b.buf = nil
}
