// Package dynarr implements a dynamic array with an explicit split between
// raw storage and element lifetime.
//
// What:
//
//   - Array[T] is a contiguous, resizable sequence: indexed access, Append,
//     Insert, Remove, Resize, Reserve, Clone, and O(1) ownership transfer.
//   - Storage lives in a rawstore.Block[T] — a dumb capacity-only buffer —
//     while Array alone decides which slots hold live values and runs every
//     construct/copy/move/destroy on them.
//   - A Funcs[T] table lets element types with real lifetime behavior
//     (resource handles, counted values) plug in copy/move/destroy hooks and
//     declare whether relocation is failure-free; plain value types use the
//     trivial table and pay nothing.
//
// Why:
//
//   - Growth and shrink never construct or destroy more values than needed:
//     Reserve touches each live element exactly once, Resize only the slots
//     entering or leaving the live prefix.
//   - Failure safety is explicit: a reallocating Append or Insert builds the
//     new element in the new block before any existing element is touched,
//     so a failed construction leaves the array exactly as it was. Transfers
//     relocate only when the element table declares relocation safe (or
//     offers no duplicate path at all) and fall back to duplication
//     otherwise, so a failed transfer never strands half-moved values.
//
// Complexity:
//
//   - Len, Cap, At, Set, Swap, Take: O(1).
//   - Append: amortized O(1) under the doubling policy (capacity 1 from
//     empty, else twice the current size).
//   - Insert, Remove: O(n) shift of the tail.
//   - Reserve, Resize, Clone, CopyFrom: O(n).
//
// Errors:
//
//   - rawstore.ErrNegativeCapacity, rawstore.ErrCapacityOverflow: the
//     recoverable allocation-failure class, surfaced before any state
//     changes.
//   - ErrNegativeSize: Resize or NewSized below zero.
//   - ErrNotCopyable: a duplicate-requiring operation on a type whose table
//     has no Copy hook.
//   - Element hook failures propagate wrapped; the array is always left in a
//     valid, destructible state.
//
// Indexing past Len, PopBack on an empty array, and Insert/Remove outside
// the valid range panic: those are caller bugs, mirroring slice indexing.
//
// An Array is a single-owner, single-threaded value type. Concurrent use
// requires external synchronization.
package dynarr
