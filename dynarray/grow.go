package dynarray

import (
	"fmt"

	"github.com/katalvlaran/dynarr/core"
)

// grownCapacity returns the next capacity for demand-driven growth:
// max(1, 2·Cap()).
func (a *Array[T]) grownCapacity() int {
	if c := a.buf.Cap(); c > 0 {
		return c * 2
	}

	return 1
}

// relocateRange relocates n live values from the receiver's slots
// [srcAt, srcAt+n) into dst slots [dstAt, dstAt+n), using the strategy the
// element lifecycle selected once for the whole operation:
//
//   - move path — cheap and infallible by contract; sources are left in
//     their default state.
//   - copy path — sources stay untouched; if a copy fails, every value this
//     call constructed in dst is destroyed and the element's error is
//     returned, so the caller can roll back to the pre-call state.
//
// Complexity: O(n) element operations.
func (a *Array[T]) relocateRange(dst *core.RawBuffer[T], srcAt, dstAt, n int) error {
	if a.lc.RelocateByMove() {
		for k := 0; k < n; k++ {
			*dst.Get(dstAt+k) = a.lc.Move(a.buf.Get(srcAt + k))
		}

		return nil
	}
	for k := 0; k < n; k++ {
		v, err := a.lc.Copy(*a.buf.Get(srcAt + k))
		if err != nil {
			for r := 0; r < k; r++ {
				a.lc.Destroy(dst.Get(dstAt + r))
			}

			return err
		}
		*dst.Get(dstAt+k) = v
	}

	return nil
}

// adopt finishes a successful relocation: it destroys the originals still
// accounted to the old buffer, swaps the new block in, and releases the old
// storage. Size is left for the caller to adjust.
func (a *Array[T]) adopt(nb *core.RawBuffer[T]) {
	for i := 0; i < a.size; i++ {
		a.lc.Destroy(a.buf.Get(i))
	}
	a.buf.Swap(nb)
	nb.Release()
}

// Reserve ensures capacity for at least n elements. A request within the
// current capacity is a no-op; otherwise the array grows to exactly n,
// relocating every live element under the move-or-copy policy.
//
// Strong guarantee on the copy path: a failed element copy destroys
// whatever was constructed in the new block, releases it, and returns the
// error with the array untouched. The new block is allocated before any
// element is touched, so an allocation abort also leaves the array intact.
// Complexity: O(Len()) relocations, amortized over subsequent appends.
func (a *Array[T]) Reserve(n int) error {
	if n <= a.buf.Cap() {
		return nil
	}

	nb := core.NewRawBuffer[T](n)
	if err := a.relocateRange(&nb, 0, 0, a.size); err != nil {
		nb.Release()

		return opErr("reserve", err)
	}
	a.adopt(&nb)

	return nil
}

// Resize sets the live element count to n. Shrinking destroys the elements
// in [n, Len()); growing reserves capacity if needed and default-constructs
// the elements in [Len(), n). Panics if n is negative.
// Complexity: O(|n − Len()|) element operations plus relocation on growth.
func (a *Array[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("dynarray: negative size %d", n))
	}
	switch {
	case n < a.size:
		for i := n; i < a.size; i++ {
			a.lc.Destroy(a.buf.Get(i))
		}
	case n > a.size:
		if n > a.buf.Cap() {
			if err := a.Reserve(n); err != nil {
				return err
			}
		}
		for i := a.size; i < n; i++ {
			*a.buf.Get(i) = a.lc.Construct()
		}
	}
	a.size = n

	return nil
}
