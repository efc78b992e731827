package core

import "fmt"

// RawBuffer owns a fixed-capacity block of element slots. The buffer is pure
// storage: it never constructs or destroys a T, and it draws no distinction
// between live and raw slots — that bookkeeping belongs to the owner.
//
// A RawBuffer must not be copied; transfer ownership with Move or exchange
// it with Swap. The zero value is a valid empty buffer (capacity 0).
type RawBuffer[T any] struct {
	block []T
}

// NewRawBuffer allocates storage for capacity elements. Capacity 0 performs
// no allocation. No T is constructed; every slot starts as raw storage.
// Panics if capacity is negative.
// Complexity: O(capacity) allocation, zero element operations.
func NewRawBuffer[T any](capacity int) RawBuffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("core: negative buffer capacity %d", capacity))
	}
	if capacity == 0 {
		return RawBuffer[T]{}
	}

	return RawBuffer[T]{block: make([]T, capacity)}
}

// Cap returns the number of element slots the block can hold.
// Complexity: O(1).
func (b *RawBuffer[T]) Cap() int {
	return len(b.block)
}

// Get returns a pointer to slot i. The slot may be live or raw; the buffer
// does not know or care. Requires 0 ≤ i < Cap(); panics otherwise.
// Complexity: O(1).
func (b *RawBuffer[T]) Get(i int) *T {
	if i < 0 || i >= len(b.block) {
		panic(fmt.Sprintf("core: slot index %d out of range [0,%d)", i, len(b.block)))
	}

	return &b.block[i]
}

// Tail returns a view of slots [i, Cap()). Unlike Get, i may equal Cap():
// the result is then an empty view at one-past-end, the usual insertion
// target. Panics when i is negative or exceeds Cap().
// Complexity: O(1).
func (b *RawBuffer[T]) Tail(i int) []T {
	if i < 0 || i > len(b.block) {
		panic(fmt.Sprintf("core: slot offset %d out of range [0,%d]", i, len(b.block)))
	}

	return b.block[i:]
}

// Swap exchanges the owned blocks of two buffers. No element is touched.
// Complexity: O(1).
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.block, other.block = other.block, b.block
}

// Move transfers ownership of the block to the returned buffer and leaves
// the receiver empty (capacity 0, no storage).
// Complexity: O(1).
func (b *RawBuffer[T]) Move() RawBuffer[T] {
	out := RawBuffer[T]{block: b.block}
	b.block = nil

	return out
}

// Release drops the owned block. It does not destroy any value inside it —
// the owner must have destroyed every live value first. After Release the
// buffer is empty and reusable.
// Complexity: O(1).
func (b *RawBuffer[T]) Release() {
	b.block = nil
}
