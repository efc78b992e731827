package core

import "errors"

// Sentinel errors for lifecycle operations.
var (
	// ErrNotCopyable is returned by Copy when the element type was declared
	// move-only via WithNoCopy.
	ErrNotCopyable = errors.New("core: element type is not copyable")
)

// Lifecycle bundles the element type's capability set: default-construct,
// copy, move, and destroy, plus the single trait the container's relocation
// policy depends on (see RelocateByMove).
//
// Every capability has a safe default for plain value types:
//
//	construct — the zero value
//	copy      — shallow value copy, never fails
//	move      — take the value, reset the source to the zero value
//	destroy   — reset the slot to the zero value (releases references)
//
// Custom capabilities are installed with LifecycleOption values; see
// NewLifecycle. A Lifecycle is immutable after construction and is shared
// by value between a container and everything it hands the elements to.
type Lifecycle[T any] struct {
	construct func() T
	copy      func(T) (T, error)
	move      func(*T) T
	destroy   func(*T)

	noCopy      bool
	fragileMove bool
}

// DefaultLifecycle returns the all-defaults capability set for T.
// Complexity: O(1).
func DefaultLifecycle[T any]() Lifecycle[T] {
	return Lifecycle[T]{
		construct: func() T { var zero T; return zero },
		copy:      func(v T) (T, error) { return v, nil },
		move: func(src *T) T {
			v := *src
			var zero T
			*src = zero

			return v
		},
		destroy: func(slot *T) {
			var zero T
			*slot = zero
		},
	}
}

// NewLifecycle builds a capability set from defaults plus the given options,
// applied left to right.
// Complexity: O(len(opts)).
func NewLifecycle[T any](opts ...LifecycleOption[T]) Lifecycle[T] {
	lc := DefaultLifecycle[T]()
	for _, opt := range opts {
		opt(&lc)
	}

	return lc
}

// Construct default-constructs a new value of T.
// Complexity: the element's constructor.
func (lc Lifecycle[T]) Construct() T {
	return lc.construct()
}

// Copy copy-constructs a new value from v. Returns ErrNotCopyable for
// move-only element types; otherwise failure comes from the element's own
// copy capability and is propagated unwrapped.
func (lc Lifecycle[T]) Copy(v T) (T, error) {
	if lc.noCopy {
		var zero T

		return zero, ErrNotCopyable
	}

	return lc.copy(v)
}

// Move move-constructs a new value out of *src, leaving *src in its default
// state. Move is infallible by contract: the signature admits no error, and
// the relocation policy relies on that (see RelocateByMove).
func (lc Lifecycle[T]) Move(src *T) T {
	return lc.move(src)
}

// Destroy ends the lifetime of the value in *slot and resets the slot so it
// holds no references. Destroying an already-destroyed (default) value is
// harmless.
func (lc Lifecycle[T]) Destroy(slot *T) {
	lc.destroy(slot)
}

// Copyable reports whether T supports copy construction.
// Complexity: O(1).
func (lc Lifecycle[T]) Copyable() bool {
	return !lc.noCopy
}

// RelocateByMove reports which strategy relocation must use for T: true
// means relocate by move, false means relocate by copy.
//
// The rule: relocate by move when moving T is reliable (not fragile), or
// when T cannot be copied at all. Otherwise relocate by copy, which lets
// the container roll back cleanly if a copy fails mid-relocation.
//
// The query is answered once per operation, never per element, and every
// relocation site applies the same answer.
// Complexity: O(1).
func (lc Lifecycle[T]) RelocateByMove() bool {
	return !lc.fragileMove || lc.noCopy
}
