package dynarr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynarr"
)

// TestDoublingPolicy verifies that capacity covers size, never shrinks on
// append, and grows only when size would exceed it: 0→1→2→4→8→…
func TestDoublingPolicy(t *testing.T) {
	a := dynarr.New[int]()
	prevCap := 0
	for n := 1; n <= 100; n++ {
		require.NoError(t, a.Append(n))
		assert.Equal(t, n, a.Len())
		assert.GreaterOrEqual(t, a.Cap(), a.Len(), "capacity must cover size")
		if prevCap >= n {
			assert.Equal(t, prevCap, a.Cap(), "no growth while capacity suffices")
		} else {
			want := 1
			if n > 1 {
				want = 2 * (n - 1)
			}
			assert.Equal(t, want, a.Cap(), "growth doubles the pre-append size")
		}
		prevCap = a.Cap()
	}
}

// TestReserve verifies exact-capacity growth and the no-op path.
func TestReserve(t *testing.T) {
	a := dynarr.New[int]()
	require.NoError(t, appendAll(a, 1, 2, 3))

	require.NoError(t, a.Reserve(10))
	assert.Equal(t, 10, a.Cap(), "Reserve allocates exactly the requested capacity")
	assert.Equal(t, []int{1, 2, 3}, values(a), "values survive the transfer")

	require.NoError(t, a.Reserve(5))
	assert.Equal(t, 10, a.Cap(), "Reserve below capacity is a no-op")
	require.NoError(t, a.Reserve(10))
	assert.Equal(t, 10, a.Cap())
}

// TestReserve_NoReallocationHooks verifies the no-op path touches no
// element: zero hook traffic when capacity already suffices.
func TestReserve_NoReallocationHooks(t *testing.T) {
	var c opCounts
	a := dynarr.NewFuncs(countingFuncs(&c, true, true))
	require.NoError(t, appendAll(a, 1, 2, 3))
	require.NoError(t, a.Reserve(8))
	c.reset()

	require.NoError(t, a.Reserve(8))
	require.NoError(t, a.Reserve(2))
	assert.Equal(t, opCounts{}, c, "no element may be touched without reallocation")
}

// TestTransferStrategy pins down the relocate-vs-duplicate selection rule:
// relocation when declared safe or when no duplicate path exists,
// duplication otherwise.
func TestTransferStrategy(t *testing.T) {
	cases := []struct {
		name       string
		moveSafe   bool
		copyable   bool
		wantMoves  int
		wantCopies int
	}{
		// Growing to 4 elements transfers 1+2=3 values across two reallocations.
		{"SafeMoveRelocates", true, true, 3, 0},
		{"UnsafeMoveDuplicates", false, true, 0, 3},
		{"NoCopyRelocatesUnconditionally", false, false, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c opCounts
			a := dynarr.NewFuncs(countingFuncs(&c, tc.moveSafe, tc.copyable))
			require.NoError(t, appendAll(a, 1, 2, 3, 4))

			assert.Equal(t, tc.wantMoves, c.moves, "relocations")
			assert.Equal(t, tc.wantCopies, c.copies, "duplications")
			assert.Equal(t, 3, c.destroys, "old slots retired after each transfer")
			assert.Equal(t, []int{1, 2, 3, 4}, values(a))
		})
	}
}

// TestResize_GrowAndShrink verifies construction of entering slots and
// retirement of leaving ones, with size updated last.
func TestResize_GrowAndShrink(t *testing.T) {
	var c opCounts
	a := dynarr.NewFuncs(countingFuncs(&c, true, true))
	require.NoError(t, appendAll(a, 1, 2, 3))
	c.reset()

	require.NoError(t, a.Resize(6))
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, 3, c.news, "exactly the exposed slots are constructed")
	assert.Equal(t, []int{1, 2, 3, 0, 0, 0}, values(a))

	capBefore := a.Cap()
	c.reset()
	require.NoError(t, a.Resize(2))
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 4, c.destroys, "exactly the leaving slots are retired")
	assert.Equal(t, capBefore, a.Cap(), "shrink keeps capacity")
	assert.Equal(t, []int{1, 2}, values(a))

	assert.ErrorIs(t, a.Resize(-1), dynarr.ErrNegativeSize)
	assert.Equal(t, 2, a.Len())
}

// TestResize_ConstructorFailure verifies a failed growth retires the
// partially constructed tail and leaves Len unchanged.
func TestResize_ConstructorFailure(t *testing.T) {
	var c opCounts
	a, err := dynarr.NewSizedFuncs(2, budgetNewFuncs(&c, 4))
	require.NoError(t, err)
	require.NoError(t, a.Reserve(6), "pre-reserve so the failure path has no reallocation in it")
	c.reset()

	err = a.Resize(6)
	assert.ErrorIs(t, err, errNewBudget)
	assert.Equal(t, 2, a.Len(), "size must not move on failure")
	assert.Equal(t, 2, c.news, "budget allowed two more constructions")
	assert.Equal(t, 2, c.destroys, "the partial tail must be retired")
}

// TestAppend_StrongGuarantee verifies that a failing in-place construction
// leaves the array untouched, on both the growth and the in-place path.
func TestAppend_StrongGuarantee(t *testing.T) {
	for _, growth := range []bool{true, false} {
		name := "InPlace"
		if growth {
			name = "Growth"
		}
		t.Run(name, func(t *testing.T) {
			a := dynarr.New[int]()
			require.NoError(t, appendAll(a, 1, 2, 3))
			if !growth {
				require.NoError(t, a.Reserve(8))
			}
			lenBefore, capBefore := a.Len(), a.Cap()

			err := a.AppendFunc(func(*int) error { return errNewBudget })
			assert.ErrorIs(t, err, errNewBudget)
			assert.Equal(t, lenBefore, a.Len())
			assert.Equal(t, capBefore, a.Cap(), "failed growth must not commit new storage")
			assert.Equal(t, []int{1, 2, 3}, values(a))
		})
	}
}

// TestReserve_CopyFailure verifies the duplication fallback cleans up the
// partial transfer: the array keeps its prior storage and values.
func TestReserve_CopyFailure(t *testing.T) {
	var c opCounts
	a := dynarr.NewFuncs(budgetCopyFuncs(&c, 5))
	require.NoError(t, appendAll(a, 1, 2, 3))
	// Growth spent 0+1+2 = 3 copies; 2 remain, so the next transfer of 3
	// elements fails on the last one.
	c.reset()

	err := a.Reserve(16)
	assert.ErrorIs(t, err, errCopyBudget)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 4, a.Cap(), "prior storage is kept")
	assert.Equal(t, []int{1, 2, 3}, values(a), "sources stay intact on copy failure")
	assert.Equal(t, 2, c.copies, "two duplications succeeded before the failure")
	assert.Equal(t, 2, c.destroys, "the partial transfer must be retired")
}
