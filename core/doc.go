// Package core provides the two low-level primitives the dynarr container
// is built from: raw slot storage (RawBuffer) and the element-lifecycle
// capability set (Lifecycle).
//
// The central idea is a strict split between storage and liveness:
//
//   - RawBuffer[T] owns a fixed-capacity block of element slots. It never
//     constructs, copies, or destroys a value — as far as the buffer is
//     concerned every slot is raw storage. The buffer only allocates,
//     addresses, swaps, moves, and releases the block.
//   - Lifecycle[T] bundles the element type's capabilities — construct,
//     copy, move, destroy — plus the one trait the relocation policy needs:
//     whether relocating a value by move is reliable for this type.
//
// Liveness (which slots currently hold constructed values) is tracked by
// the owner of the buffer, dynarray.Array, never by the buffer itself.
// "Construct a value into slot i" and "obtain slot i" are therefore two
// separate operations: RawBuffer hands out the slot, Lifecycle produces the
// value, and the owner records that the slot is now live.
//
// Ownership rules:
//
//	– A RawBuffer has exactly one owner. Move() transfers the block and
//	  leaves the source empty; Swap() exchanges two blocks in O(1).
//	– Copying a RawBuffer value is invalid: raw storage has no deep-copy
//	  semantics at this layer. Copying elements is the container's job.
//	– Release() drops the block without touching values. The owner must
//	  destroy every live value first, or their references outlive the
//	  container in whatever still points at the block.
//
// Errors and preconditions:
//
//	ErrNotCopyable — Lifecycle.Copy on a move-only element type.
//
// Precondition violations (slot index out of range, negative capacity) are
// caller bugs and panic with a "core:"-prefixed message; they are never
// returned as errors.
package core
