package dynarr

import (
	"fmt"

	"github.com/katalvlaran/dynarr/rawstore"
)

// Append places v after the last live element, growing storage under the
// doubling policy when full. On a growth path the new element reaches its
// final slot in the new storage before any existing element is touched, so
// a failure leaves the array exactly as it was.
func (a *Array[T]) Append(v T) error {
	return a.AppendFunc(func(p *T) error { *p = v; return nil })
}

// AppendFunc constructs the new last element in place: build receives the
// address of the destination slot and fills it, which generalizes Append to
// arbitrary construction. The same growth and failure behavior as Append
// applies; if build fails the array is unchanged.
func (a *Array[T]) AppendFunc(build func(*T) error) error {
	if a.size == a.data.Cap() {
		blk, err := rawstore.New[T](a.grownCap())
		if err != nil {
			return err
		}
		// New element first: existing elements stay untouched on failure.
		if err = build(blk.Slot(a.size)); err != nil {
			blk.Release()
			return err
		}
		if err = a.transfer(&a.data, &blk, 0, 0, a.size); err != nil {
			a.destroySlot(blk.Slot(a.size))
			blk.Release()
			return err
		}
		a.commit(&blk)
	} else {
		p := a.data.Slot(a.size)
		if err := build(p); err != nil {
			var zero T
			*p = zero
			return err
		}
	}
	a.size++
	return nil
}

// PopBack retires the last element. Panics on an empty array.
func (a *Array[T]) PopBack() {
	if a.size == 0 {
		panic("dynarr: PopBack on empty array")
	}
	a.size--
	a.destroySlot(a.data.Slot(a.size))
}

// Insert places v at position i, shifting the tail right. Valid positions
// are [0, Len()]; i == Len() appends. Panics on any other position.
func (a *Array[T]) Insert(i int, v T) error {
	return a.InsertFunc(i, func(p *T) error { *p = v; return nil })
}

// InsertFunc is Insert with in-place construction, like AppendFunc.
//
// When growth is needed the new element is constructed at its final offset
// in the new storage, then the prefix and suffix of the old storage are
// transferred around it; a failure anywhere retires what was placed in the
// new block and leaves the array as it was. Without growth the element is
// built up front, the last element is relocated into the one-past-end slot,
// the range (i, Len()-1) shifts right by relocation-assignment, and slot i
// receives the new value.
func (a *Array[T]) InsertFunc(i int, build func(*T) error) error {
	if i < 0 || i > a.size {
		panic(fmt.Sprintf("dynarr: insert position %d out of range [0,%d]", i, a.size))
	}
	if i == a.size {
		return a.AppendFunc(build)
	}
	if a.size == a.data.Cap() {
		blk, err := rawstore.New[T](a.grownCap())
		if err != nil {
			return err
		}
		if err = build(blk.Slot(i)); err != nil {
			blk.Release()
			return err
		}
		if err = a.transfer(&a.data, &blk, 0, 0, i); err != nil {
			a.destroySlot(blk.Slot(i))
			blk.Release()
			return err
		}
		if err = a.transfer(&a.data, &blk, i, i+1, a.size-i); err != nil {
			a.destroyRange(&blk, 0, i+1)
			blk.Release()
			return err
		}
		a.commit(&blk)
		a.size++
		return nil
	}
	// Build first so a failure leaves the array untouched.
	var v T
	if err := build(&v); err != nil {
		return err
	}
	last := a.size - 1
	*a.data.Slot(a.size) = a.fn.Move(a.data.Slot(last))
	for j := last; j > i; j-- {
		a.moveAssign(a.data.Slot(j), a.data.Slot(j-1))
	}
	p := a.data.Slot(i)
	a.destroySlot(p)
	*p = v
	a.size++
	return nil
}

// Remove retires element i, shifting the tail left by
// relocation-assignment and retiring the vacated last slot. Panics when i
// is outside [0, Len()).
func (a *Array[T]) Remove(i int) {
	a.checkIndex(i)
	for j := i; j < a.size-1; j++ {
		a.moveAssign(a.data.Slot(j), a.data.Slot(j+1))
	}
	a.size--
	a.destroySlot(a.data.Slot(a.size))
}

// moveAssign relocates *src over the live value at dst: the old value is
// retired first, then the relocation lands in its place.
func (a *Array[T]) moveAssign(dst, src *T) {
	a.destroySlot(dst)
	*dst = a.fn.Move(src)
}
