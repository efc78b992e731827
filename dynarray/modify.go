package dynarray

import (
	"fmt"

	"github.com/katalvlaran/dynarr/core"
)

// Append copy-constructs v at the end of the array, growing capacity by the
// doubling policy when full. On the growth path the new element is
// constructed first, so an early copy failure wastes no relocation work and
// leaves the array untouched.
// Complexity: amortized O(1); O(Len()) when growth relocates.
func (a *Array[T]) Append(v T) error {
	_, err := a.pushBack("append", func() (T, error) { return a.lc.Copy(v) })

	return err
}

// AppendMove move-constructs the value out of *src at the end of the array,
// leaving *src in its default state. Growth follows the doubling policy.
//
// The move itself cannot fail; on the copy-relocation path a later element
// copy failure still restores the array, but *src has already given up its
// value by then.
// Complexity: amortized O(1); O(Len()) when growth relocates.
func (a *Array[T]) AppendMove(src *T) error {
	_, err := a.pushBack("append-move", func() (T, error) { return a.lc.Move(src), nil })

	return err
}

// Emplace constructs a new last element in place from the given constructor
// function, avoiding an intermediate copy, and returns a pointer to it. A
// constructor failure on the growth path is detected before any relocation
// work; the array is left untouched either way.
//
// The returned pointer is invalidated by any reallocating or shifting
// operation. Panics if construct is nil.
// Complexity: amortized O(1); O(Len()) when growth relocates.
func (a *Array[T]) Emplace(construct func() (T, error)) (*T, error) {
	if construct == nil {
		panic("dynarray: nil constructor")
	}

	return a.pushBack("emplace", construct)
}

// pushBack is the single append implementation: make the new value via
// construct, placing it at index Len() either in the current buffer or, on
// the growth path, in the new block before anything is relocated.
func (a *Array[T]) pushBack(op string, construct func() (T, error)) (*T, error) {
	if a.size == a.buf.Cap() {
		nb := core.NewRawBuffer[T](a.grownCapacity())
		v, err := construct()
		if err != nil {
			nb.Release()

			return nil, opErr(op, err)
		}
		*nb.Get(a.size) = v
		if err = a.relocateRange(&nb, 0, 0, a.size); err != nil {
			a.lc.Destroy(nb.Get(a.size))
			nb.Release()

			return nil, opErr(op, err)
		}
		a.adopt(&nb)
	} else {
		v, err := construct()
		if err != nil {
			return nil, opErr(op, err)
		}
		*a.buf.Get(a.size) = v
	}
	a.size++

	return a.buf.Get(a.size - 1), nil
}

// RemoveLast destroys the last live element and shrinks the array by one.
// A no-op on an empty array. Never reallocates.
// Complexity: O(1).
func (a *Array[T]) RemoveLast() {
	if a.size == 0 {
		return
	}
	a.lc.Destroy(a.buf.Get(a.size - 1))
	a.size--
}

// Insert copy-constructs v at position i, shifting [i, Len()) one slot
// right. Position Len() behaves like Append. Returns the final index of the
// inserted element.
//
// Guarantees: strong on the growth path (copy relocation rolls back);
// basic on the in-place path, which shifts live values by move-assignment.
// Requires 0 ≤ i ≤ Len(); panics otherwise.
// Complexity: O(Len() − i), plus O(Len()) when growth relocates.
func (a *Array[T]) Insert(i int, v T) (int, error) {
	return a.emplaceAt("insert", i, func() (T, error) { return a.lc.Copy(v) })
}

// InsertMove move-constructs the value out of *src at position i, leaving
// *src in its default state. Otherwise identical to Insert.
// Complexity: O(Len() − i), plus O(Len()) when growth relocates.
func (a *Array[T]) InsertMove(i int, src *T) (int, error) {
	return a.emplaceAt("insert-move", i, func() (T, error) { return a.lc.Move(src), nil })
}

// EmplaceAt constructs a new element in place at position i from the given
// constructor function. Otherwise identical to Insert. Panics if construct
// is nil.
// Complexity: O(Len() − i), plus O(Len()) when growth relocates.
func (a *Array[T]) EmplaceAt(i int, construct func() (T, error)) (int, error) {
	if construct == nil {
		panic("dynarray: nil constructor")
	}

	return a.emplaceAt("emplace-at", i, construct)
}

// emplaceAt is the single positional-insert implementation.
//
// Growth path: construct the new value first, directly at its target slot
// in the new block, then relocate the prefix [0,i) and the suffix [i,size)
// around it; any copy failure destroys everything constructed in the new
// block and leaves the array untouched.
//
// In-place path: construct the value in a temporary, extend the live range
// by moving the last element into the one-past-end slot, shift [i, size−1)
// one slot right back-to-front, then move the temporary into the hole.
func (a *Array[T]) emplaceAt(op string, i int, construct func() (T, error)) (int, error) {
	if i < 0 || i > a.size {
		panic(fmt.Sprintf("dynarray: position %d out of range [0,%d]", i, a.size))
	}

	switch {
	case a.size == a.buf.Cap():
		nb := core.NewRawBuffer[T](a.grownCapacity())
		v, err := construct()
		if err != nil {
			nb.Release()

			return 0, opErr(op, err)
		}
		*nb.Get(i) = v
		if err = a.relocateRange(&nb, 0, 0, i); err != nil {
			a.lc.Destroy(nb.Get(i))
			nb.Release()

			return 0, opErr(op, err)
		}
		if err = a.relocateRange(&nb, i, i+1, a.size-i); err != nil {
			for k := 0; k <= i; k++ {
				a.lc.Destroy(nb.Get(k))
			}
			nb.Release()

			return 0, opErr(op, err)
		}
		a.adopt(&nb)
	case i == a.size:
		v, err := construct()
		if err != nil {
			return 0, opErr(op, err)
		}
		*a.buf.Get(a.size) = v
	default:
		v, err := construct()
		if err != nil {
			return 0, opErr(op, err)
		}
		// extend the live range: the last element moves into the raw
		// one-past-end slot
		*a.buf.Get(a.size) = a.lc.Move(a.buf.Get(a.size - 1))
		// shift [i, size-1) one slot right, back to front
		for k := a.size - 1; k > i; k-- {
			a.moveAssign(a.buf.Get(k), a.buf.Get(k-1))
		}
		a.moveAssign(a.buf.Get(i), &v)
	}
	a.size++

	return i, nil
}

// EraseAt removes the element at position i: [i+1, Len()) shifts one slot
// left by forward move-assignment and the vacated last slot is destroyed.
// Returns the index now holding the element that followed the erased one,
// which equals the new Len() when the last element was erased.
//
// Basic guarantee (shift by move-assignment). Requires 0 ≤ i < Len();
// panics otherwise.
// Complexity: O(Len() − i).
func (a *Array[T]) EraseAt(i int) int {
	if i < 0 || i >= a.size {
		panic(fmt.Sprintf("dynarray: index %d out of range [0,%d)", i, a.size))
	}
	for k := i; k+1 < a.size; k++ {
		a.moveAssign(a.buf.Get(k), a.buf.Get(k+1))
	}
	a.RemoveLast()

	return i
}

// moveAssign replaces the live value in *dst with the value moved out of
// *src: destroy the destination, then move-construct into the vacated slot.
// Slot-lifetime equivalent of a move assignment.
func (a *Array[T]) moveAssign(dst, src *T) {
	a.lc.Destroy(dst)
	*dst = a.lc.Move(src)
}
