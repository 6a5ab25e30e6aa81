package dynarr

import (
	"fmt"

	"github.com/katalvlaran/dynarr/rawstore"
)

// relocates reports the transfer strategy for this element type: relocate
// when the table declares relocation failure-free, or unconditionally when
// no duplicate path exists; duplicate otherwise. Duplication is the
// fallback because a failed copy leaves every source intact, while a failed
// relocation would strand half-moved values.
func (a *Array[T]) relocates() bool {
	return a.fn.MoveSafe || a.fn.Copy == nil
}

// transfer brings n live values from src[srcOff…] into dst[dstOff…].
// Relocation cannot fail. On a duplication failure the values already
// placed in dst are retired and the sources are untouched, so the caller's
// prior state is fully preserved.
func (a *Array[T]) transfer(src, dst *rawstore.Block[T], srcOff, dstOff, n int) error {
	if a.relocates() {
		for i := 0; i < n; i++ {
			*dst.Slot(dstOff+i) = a.fn.Move(src.Slot(srcOff + i))
		}
		return nil
	}
	for i := 0; i < n; i++ {
		v, err := a.fn.Copy(src.Slot(srcOff + i))
		if err != nil {
			a.destroyRange(dst, dstOff, i)
			return fmt.Errorf("dynarr: duplicating element %d: %w", srcOff+i, err)
		}
		*dst.Slot(dstOff+i) = v
	}
	return nil
}

// commit retires the current live range and swaps in blk, which must
// already hold every element the array will own. This is the atomic step
// of every reallocation: once Swap runs the array owns the new storage.
func (a *Array[T]) commit(blk *rawstore.Block[T]) {
	a.destroyRange(&a.data, 0, a.size)
	a.data.Swap(blk)
	blk.Release()
}

// grownCap returns the next capacity under the doubling policy: 1 from
// empty, otherwise twice the current size.
func (a *Array[T]) grownCap() int {
	if a.size == 0 {
		return 1
	}
	return 2 * a.size
}

// Reserve ensures capacity for at least n elements. It is a no-op when the
// current storage already suffices; otherwise it allocates exactly n slots,
// transfers every live element, retires the old ones, and swaps storage.
// Element values and Len are unchanged either way.
func (a *Array[T]) Reserve(n int) error {
	if n <= a.data.Cap() {
		return nil
	}
	blk, err := rawstore.New[T](n)
	if err != nil {
		return err
	}
	if err = a.transfer(&a.data, &blk, 0, 0, a.size); err != nil {
		blk.Release()
		return err
	}
	a.commit(&blk)
	return nil
}

// Resize grows or shrinks the live prefix to n elements. Growth reserves
// first, then default-constructs the new slots; a construction failure
// retires the partial growth and leaves Len unchanged. Shrink retires the
// excess tail. Len is updated last.
func (a *Array[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if err := a.Reserve(n); err != nil {
		return err
	}
	if n > a.size {
		for i := a.size; i < n; i++ {
			v, err := a.fn.New()
			if err != nil {
				a.destroyRange(&a.data, a.size, i-a.size)
				return fmt.Errorf("dynarr: constructing element %d: %w", i, err)
			}
			*a.data.Slot(i) = v
		}
	} else {
		a.destroyRange(&a.data, n, a.size-n)
	}
	a.size = n
	return nil
}
