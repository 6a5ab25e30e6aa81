// Package rawstore provides Block, an owned region of typed element slots
// that carries no notion of element lifetime.
//
// What:
//
//   - Block[T] reserves storage for exactly Cap() slots of T.
//   - Slot(i) yields the address of slot i via pointer arithmetic.
//   - Swap exchanges ownership of two blocks in O(1) without touching slots.
//   - A Block never constructs, copies, or destroys element values; which
//     slots hold live values is entirely the caller's bookkeeping.
//
// Why:
//
//   - Growable containers need raw capacity that outlives any single element:
//     reallocation wants "acquire a bigger block, transfer, swap" without the
//     storage layer second-guessing which slots are live.
//   - Keeping lifetime out of the storage layer makes Swap a safe atomic
//     commit step: by the time two blocks trade buffers, the caller has
//     already dealt with every live value.
//
// Complexity:
//
//   - New: O(capacity) allocation, O(1) bookkeeping.
//   - Slot, Cap, Base, Swap, Release: O(1).
//
// Errors:
//
//   - ErrNegativeCapacity: requested capacity below zero.
//   - ErrCapacityOverflow: capacity * element size exceeds the address space.
//
// A Block must not be copied; pass it by pointer or transfer ownership with
// Swap. The zero value is a valid empty block of capacity 0.
package rawstore
