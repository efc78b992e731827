package core

// LifecycleOption configures a Lifecycle via functional arguments.
// Nil function arguments are ignored and leave the default in place.
type LifecycleOption[T any] func(*Lifecycle[T])

// WithConstruct installs a custom default constructor, used when the
// container needs to materialize new elements (e.g. growth via Resize).
func WithConstruct[T any](fn func() T) LifecycleOption[T] {
	return func(lc *Lifecycle[T]) {
		if fn != nil {
			lc.construct = fn
		}
	}
}

// WithCopy installs a custom copy constructor. The function may fail; a
// failure during relocation triggers the container's rollback path.
func WithCopy[T any](fn func(T) (T, error)) LifecycleOption[T] {
	return func(lc *Lifecycle[T]) {
		if fn != nil {
			lc.copy = fn
		}
	}
}

// WithMove installs a custom move constructor. The function must take the
// value out of its source, leave the source in its default state, and must
// not fail — the signature enforces the latter.
func WithMove[T any](fn func(*T) T) LifecycleOption[T] {
	return func(lc *Lifecycle[T]) {
		if fn != nil {
			lc.move = fn
		}
	}
}

// WithDestroy installs a custom destructor. It must leave the slot holding
// no references, so releasing the underlying storage afterwards leaks
// nothing.
func WithDestroy[T any](fn func(*T)) LifecycleOption[T] {
	return func(lc *Lifecycle[T]) {
		if fn != nil {
			lc.destroy = fn
		}
	}
}

// WithNoCopy declares T move-only: Copy returns ErrNotCopyable, and
// relocation always goes by move (there is no copy to fall back to).
func WithNoCopy[T any]() LifecycleOption[T] {
	return func(lc *Lifecycle[T]) {
		lc.noCopy = true
	}
}

// WithFragileMove declares that relocating T by move is not reliable for
// this type (for example self-referential values whose fixup can fail).
// When T is also copyable, relocation switches to the copy strategy, whose
// failure path rolls back without touching the source elements.
func WithFragileMove[T any]() LifecycleOption[T] {
	return func(lc *Lifecycle[T]) {
		lc.fragileMove = true
	}
}
