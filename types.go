package dynarr

// Funcs declares how values of T are brought into and out of existence
// inside an Array. The table is the element type's capability marker: it
// tells the array whether relocation can be trusted during a transfer and
// whether duplication is available at all.
//
// Fields:
//   - New      — produce a fresh default value. May fail (e.g. a handle
//     that must be acquired). nil means "zero value, never fails".
//   - Copy     — duplicate the value behind src. May fail. nil means the
//     type is not copyable: Clone and CopyFrom return ErrNotCopyable, and
//     transfers relocate unconditionally.
//   - Move     — relocate the value out of src and return it. Must not
//     fail and must leave *src in a state Destroy can handle. nil means
//     shallow move (plain read of *src).
//   - MoveSafe — relocation is declared failure-free for transfer
//     purposes. When false and Copy is present, reallocation duplicates
//     instead, so a mid-transfer failure cannot strand half-moved values.
//   - Destroy  — end-of-life hook, run on every value leaving the live
//     prefix. nil means "zero the slot". After a custom hook the slot is
//     zeroed as well, so nothing the value referenced stays reachable
//     through the buffer.
//
// Assignment over a live slot is composed as Destroy-then-place: the array
// retires the old value before relocating or duplicating the new one in.
type Funcs[T any] struct {
	New      func() (T, error)
	Copy     func(src *T) (T, error)
	Move     func(src *T) T
	MoveSafe bool
	Destroy  func(*T)
}

// TrivialFuncs returns the table for plain value types: zero-value New,
// shallow Copy and Move, zeroing Destroy, relocation declared safe. This is
// what New and NewSized use.
func TrivialFuncs[T any]() Funcs[T] {
	return Funcs[T]{
		New:      func() (T, error) { var zero T; return zero, nil },
		Copy:     func(src *T) (T, error) { return *src, nil },
		Move:     func(src *T) T { return *src },
		MoveSafe: true,
		Destroy:  func(p *T) { var zero T; *p = zero },
	}
}

// normalize fills the hooks that have universal defaults. Copy stays nil
// when absent — that absence is meaningful (the type is not copyable).
func (f Funcs[T]) normalize() Funcs[T] {
	if f.New == nil {
		f.New = func() (T, error) { var zero T; return zero, nil }
	}
	if f.Move == nil {
		f.Move = func(src *T) T { return *src }
	}
	if f.Destroy == nil {
		f.Destroy = func(p *T) { var zero T; *p = zero }
	}
	return f
}
