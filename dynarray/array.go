package dynarray

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/dynarr/core"
)

// Len returns the number of live elements.
// Complexity: O(1).
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated element slots, live or not.
// Complexity: O(1).
func (a *Array[T]) Cap() int {
	return a.buf.Cap()
}

// At returns a pointer to the live element at index i, for reading or
// writing in place. Requires 0 ≤ i < Len(); panics otherwise.
//
// The pointer is a raw position into the buffer: any operation that
// reallocates or shifts elements invalidates it.
// Complexity: O(1).
func (a *Array[T]) At(i int) *T {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("dynarray: index %d out of range [0,%d)", i, a.size))
	}

	return a.buf.Get(i)
}

// Slice returns the live range [0, Len()) as a mutable view into the
// buffer — the begin/end pair of this container. The view's capacity is
// clipped to Len() so appending to it cannot reach raw slots.
//
// The view is invalidated by any operation that reallocates or shifts
// elements (Append, Insert, EraseAt, Reserve, Resize, …).
// Complexity: O(1).
func (a *Array[T]) Slice() []T {
	return a.buf.Tail(0)[:a.size:a.size]
}

// All returns a forward iterator over (index, value) pairs of the live
// range. The array must not be mutated during iteration.
// Complexity: O(Len()) for a full pass.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, *a.buf.Get(i)) {
				return
			}
		}
	}
}

// Clone copy-constructs a new array with the receiver's elements and
// capacity equal to Len(). Strong guarantee: if an element copy fails, the
// already-constructed prefix is destroyed, nothing is leaked, and the error
// is returned (ErrNotCopyable for move-only element types).
// Complexity: O(Len()) copies.
func (a *Array[T]) Clone() (*Array[T], error) {
	out := &Array[T]{buf: core.NewRawBuffer[T](a.size), lc: a.lc}
	for i := 0; i < a.size; i++ {
		v, err := a.lc.Copy(*a.buf.Get(i))
		if err != nil {
			for k := 0; k < i; k++ {
				out.lc.Destroy(out.buf.Get(k))
			}
			out.buf.Release()

			return nil, opErr("clone", err)
		}
		*out.buf.Get(i) = v
	}
	out.size = a.size

	return out, nil
}

// CopyFrom copy-assigns src into the receiver. Self-assignment is a no-op.
//
// When src.Len() exceeds the receiver's capacity the assignment goes
// through a fresh block (strong guarantee: a copy failure leaves the
// receiver untouched). Otherwise existing capacity is reused: the common
// prefix is overwritten copy-by-copy, a longer receiver destroys its tail,
// a shorter one copy-constructs the missing tail. The reuse path gives the
// basic guarantee only — a mid-way copy failure leaves the receiver valid
// but with a partially overwritten prefix.
// Complexity: O(src.Len() + Len()).
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if a == src {
		return nil
	}

	if src.size > a.buf.Cap() {
		nb := core.NewRawBuffer[T](src.size)
		for i := 0; i < src.size; i++ {
			v, err := a.lc.Copy(*src.buf.Get(i))
			if err != nil {
				for k := 0; k < i; k++ {
					a.lc.Destroy(nb.Get(k))
				}
				nb.Release()

				return opErr("copy-assign", err)
			}
			*nb.Get(i) = v
		}
		a.adopt(&nb)
		a.size = src.size

		return nil
	}

	// Reuse existing capacity.
	shared := min(a.size, src.size)
	for i := 0; i < shared; i++ {
		v, err := a.lc.Copy(*src.buf.Get(i))
		if err != nil {
			return opErr("copy-assign", err)
		}
		a.lc.Destroy(a.buf.Get(i))
		*a.buf.Get(i) = v
	}
	for i := src.size; i < a.size; i++ {
		a.lc.Destroy(a.buf.Get(i))
	}
	for i := shared; i < src.size; i++ {
		v, err := a.lc.Copy(*src.buf.Get(i))
		if err != nil {
			for k := shared; k < i; k++ {
				a.lc.Destroy(a.buf.Get(k))
			}
			a.size = shared

			return opErr("copy-assign", err)
		}
		*a.buf.Get(i) = v
	}
	a.size = src.size

	return nil
}

// Move transfers the receiver's buffer and live values into a new array and
// leaves the receiver valid and empty (size 0, capacity 0).
// Complexity: O(1).
func (a *Array[T]) Move() *Array[T] {
	out := &Array[T]{buf: a.buf.Move(), size: a.size, lc: a.lc}
	a.size = 0

	return out
}

// MoveFrom move-assigns src into the receiver: the receiver's own values
// are destroyed, then buffers are exchanged. Afterwards src is valid and
// empty (size 0; it keeps the receiver's old storage as spare capacity).
// Self-assignment is a no-op.
// Complexity: O(Len()) destroys + O(1) exchange.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	a.clear()
	a.Swap(src)
}

// Swap exchanges the entire state of two arrays, including their element
// lifecycles, in constant time. No element is touched.
// Complexity: O(1).
func (a *Array[T]) Swap(other *Array[T]) {
	a.buf.Swap(&other.buf)
	a.size, other.size = other.size, a.size
	a.lc, other.lc = other.lc, a.lc
}

// Destroy destroys every live element, then releases the underlying
// storage — two distinct steps, in that order. The array is left valid and
// empty; Destroy is idempotent.
// Complexity: O(Len()) destroys.
func (a *Array[T]) Destroy() {
	a.clear()
	a.buf.Release()
}

// clear destroys the live range and resets size, keeping the storage.
func (a *Array[T]) clear() {
	for i := 0; i < a.size; i++ {
		a.lc.Destroy(a.buf.Get(i))
	}
	a.size = 0
}
