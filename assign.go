package dynarr

import (
	"fmt"

	"github.com/katalvlaran/dynarr/rawstore"
)

// Clone returns a deep copy of the array with capacity exactly Len().
// Mutating the clone never affects the original. Returns ErrNotCopyable
// when the element table has no Copy hook; a mid-copy failure retires the
// partial clone and returns the error.
func (a *Array[T]) Clone() (*Array[T], error) {
	if a.fn.Copy == nil {
		return nil, ErrNotCopyable
	}
	blk, err := a.duplicateInto(a)
	if err != nil {
		return nil, err
	}
	out := NewFuncs(a.fn)
	out.data.Swap(&blk)
	out.size = a.size
	return out, nil
}

// CopyFrom makes a hold the same values as src (copy assignment).
//
// When src does not fit the current capacity, the whole copy is built
// first and then swapped in, so a failure leaves a unchanged. Otherwise
// existing capacity is reused: the overlapping prefix is assigned
// element-wise, a longer destination retires its excess tail, and a longer
// source copy-constructs the extra slots without reallocating. Len is
// updated only after every element operation has succeeded; a mid-copy
// failure on the reuse path leaves a valid array with its prior Len.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if a == src {
		return nil
	}
	if a.fn.Copy == nil {
		return ErrNotCopyable
	}
	if src.size > a.data.Cap() {
		blk, err := a.duplicateInto(src)
		if err != nil {
			return err
		}
		a.commit(&blk)
		a.size = src.size
		return nil
	}
	n := min(a.size, src.size)
	for i := 0; i < n; i++ {
		v, err := a.fn.Copy(src.data.Slot(i))
		if err != nil {
			return fmt.Errorf("dynarr: duplicating element %d: %w", i, err)
		}
		p := a.data.Slot(i)
		a.destroySlot(p)
		*p = v
	}
	if src.size < a.size {
		a.destroyRange(&a.data, src.size, a.size-src.size)
	} else {
		for i := a.size; i < src.size; i++ {
			v, err := a.fn.Copy(src.data.Slot(i))
			if err != nil {
				a.destroyRange(&a.data, a.size, i-a.size)
				return fmt.Errorf("dynarr: duplicating element %d: %w", i, err)
			}
			*a.data.Slot(i) = v
		}
	}
	a.size = src.size
	return nil
}

// Take implements move assignment: a takes ownership of src's storage and
// elements in O(1) element transfers — only an ownership swap — and src is
// left logically empty with Len 0. a's previous elements are retired first
// so their Destroy hooks run; src keeps a's old buffer as bare capacity.
func (a *Array[T]) Take(src *Array[T]) {
	if a == src {
		return
	}
	a.destroyRange(&a.data, 0, a.size)
	a.data.Swap(&src.data)
	a.size, src.size = src.size, 0
}

// duplicateInto copy-constructs every live element of src into a fresh
// block of capacity src.Len(). On failure the partial block is retired and
// nothing is left allocated.
func (a *Array[T]) duplicateInto(src *Array[T]) (rawstore.Block[T], error) {
	blk, err := rawstore.New[T](src.size)
	if err != nil {
		return rawstore.Block[T]{}, err
	}
	for i := 0; i < src.size; i++ {
		v, err := a.fn.Copy(src.data.Slot(i))
		if err != nil {
			a.destroyRange(&blk, 0, i)
			blk.Release()
			return rawstore.Block[T]{}, fmt.Errorf("dynarr: duplicating element %d: %w", i, err)
		}
		*blk.Slot(i) = v
	}
	return blk, nil
}
