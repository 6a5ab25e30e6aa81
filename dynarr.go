package dynarr

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/dynarr/rawstore"
)

// Array is a contiguous, resizable sequence of T. It owns exactly one
// rawstore.Block and a live-element count: slots [0, Len()) always hold
// live values, slots [Len(), Cap()) are bare storage. Every public
// operation restores that invariant before returning.
//
// The zero value is not ready for use; construct with New, NewFuncs,
// NewSized, or NewSizedFuncs.
type Array[T any] struct {
	data rawstore.Block[T]
	size int
	fn   Funcs[T]
}

// New returns an empty array for a plain value type: zero capacity, zero
// size, trivial lifetime table.
func New[T any]() *Array[T] {
	return &Array[T]{fn: TrivialFuncs[T]()}
}

// NewFuncs returns an empty array whose elements live by the given table.
func NewFuncs[T any](fn Funcs[T]) *Array[T] {
	return &Array[T]{fn: fn.normalize()}
}

// NewSized returns an array of n zero-valued elements with capacity
// exactly n. Returns ErrNegativeSize when n < 0.
func NewSized[T any](n int) (*Array[T], error) {
	return NewSizedFuncs(n, TrivialFuncs[T]())
}

// NewSizedFuncs returns an array of n default-constructed elements (via
// fn.New) with capacity exactly n. A construction failure destroys the
// partially built prefix and returns the error; no array is leaked
// half-built.
func NewSizedFuncs[T any](n int, fn Funcs[T]) (*Array[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	a := NewFuncs(fn)
	blk, err := rawstore.New[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v, err := a.fn.New()
		if err != nil {
			a.destroyRange(&blk, 0, i)
			blk.Release()
			return nil, fmt.Errorf("dynarr: constructing element %d: %w", i, err)
		}
		*blk.Slot(i) = v
	}
	a.data.Swap(&blk)
	a.size = n
	return a, nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the number of slots the owned storage can hold.
func (a *Array[T]) Cap() int { return a.data.Cap() }

// At returns the address of element i. The reference stays valid until the
// next mutating operation. Panics when i is outside [0, Len()).
func (a *Array[T]) At(i int) *T {
	a.checkIndex(i)
	return a.data.Slot(i)
}

// Value returns a shallow read of element i. Panics when i is outside
// [0, Len()).
func (a *Array[T]) Value(i int) T {
	a.checkIndex(i)
	return *a.data.Slot(i)
}

// Set assigns v into slot i, retiring the previous value first (Destroy,
// then place). Panics when i is outside [0, Len()).
func (a *Array[T]) Set(i int, v T) {
	a.checkIndex(i)
	p := a.data.Slot(i)
	a.destroySlot(p)
	*p = v
}

// Front returns the address of the first element. Panics on an empty array.
func (a *Array[T]) Front() *T {
	if a.size == 0 {
		panic("dynarr: Front on empty array")
	}
	return a.data.Slot(0)
}

// Back returns the address of the last element. Panics on an empty array.
func (a *Array[T]) Back() *T {
	if a.size == 0 {
		panic("dynarr: Back on empty array")
	}
	return a.data.Slot(a.size - 1)
}

// All returns a forward traversal over the live prefix in index order. The
// sequence is lazy and restartable; yielded references are valid until the
// next mutating operation on the array.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.data.Slot(i)) {
				return
			}
		}
	}
}

// Swap exchanges the full state of two arrays in O(1). No element is
// touched.
func (a *Array[T]) Swap(other *Array[T]) {
	a.data.Swap(&other.data)
	a.size, other.size = other.size, a.size
	a.fn, other.fn = other.fn, a.fn
}

func (a *Array[T]) checkIndex(i int) {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("dynarr: index %d out of range [0,%d)", i, a.size))
	}
}

// destroySlot retires the value at p and zeroes the slot so nothing it
// referenced stays reachable through the buffer.
func (a *Array[T]) destroySlot(p *T) {
	a.fn.Destroy(p)
	var zero T
	*p = zero
}

// destroyRange retires slots [off, off+n) of blk.
func (a *Array[T]) destroyRange(blk *rawstore.Block[T], off, n int) {
	for i := 0; i < n; i++ {
		a.destroySlot(blk.Slot(off + i))
	}
}
