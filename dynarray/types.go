// Package dynarray defines the Array container type and its construction
// helpers for the dynarray subpackage of github.com/katalvlaran/dynarr.
package dynarray

import (
	"fmt"

	"github.com/katalvlaran/dynarr/core"
)

// Array is a generic dynamic array: one owned block of element slots plus
// the count of live values inside it. Slots [0, size) hold constructed
// values; slots [size, Cap()) are raw storage.
//
// An Array has value semantics only through its explicit operations: Clone
// and CopyFrom copy, Move/MoveFrom/Swap transfer ownership in O(1). Copying
// the struct itself aliases the underlying block and is invalid.
//
// The zero value is not usable; construct with New or NewWithSize so the
// element lifecycle is installed.
type Array[T any] struct {
	buf  core.RawBuffer[T]
	size int
	lc   core.Lifecycle[T]
}

// New returns an empty array (size 0, capacity 0). The element capability
// set is assembled from opts; see core.NewLifecycle.
// Complexity: O(len(opts)), no allocation.
func New[T any](opts ...core.LifecycleOption[T]) *Array[T] {
	return &Array[T]{lc: core.NewLifecycle[T](opts...)}
}

// NewWithSize returns an array holding n default-constructed elements, with
// capacity exactly n. Panics if n is negative.
// Complexity: O(n) constructions.
func NewWithSize[T any](n int, opts ...core.LifecycleOption[T]) *Array[T] {
	if n < 0 {
		panic(fmt.Sprintf("dynarray: negative size %d", n))
	}
	a := &Array[T]{
		buf: core.NewRawBuffer[T](n),
		lc:  core.NewLifecycle[T](opts...),
	}
	for i := 0; i < n; i++ {
		*a.buf.Get(i) = a.lc.Construct()
	}
	a.size = n

	return a
}

// opErr wraps an element-level failure with the operation that triggered
// it, preserving errors.Is/As against the element's own error.
func opErr(op string, err error) error {
	return fmt.Errorf("dynarray: %s: %w", op, err)
}
