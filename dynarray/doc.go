// Package dynarray implements Array, a generic dynamic-array container over
// explicitly managed slot storage (core.RawBuffer) with a pluggable element
// capability set (core.Lifecycle).
//
// The Array G = (buffer, size) keeps one owned RawBuffer plus the count of
// live values inside it, and supports a rich mix of value-level operations:
//
//   - Amortized O(1) append, by copy (Append) or by move (AppendMove)
//   - In-place construction from a constructor function (Emplace, EmplaceAt)
//   - Positional insert and erase with shift semantics (Insert, EraseAt)
//   - Explicit capacity control (Reserve) and length control (Resize)
//   - Whole-array copy (Clone, CopyFrom), O(1) move (Move, MoveFrom, Swap)
//   - Views over the live range (Slice, All)
//
// Why use dynarray.Array?
//
//   - Single relocation policy — every operation that grows capacity
//     relocates through the same move-or-copy rule, decided once per
//     operation by the element's Lifecycle (core.Lifecycle.RelocateByMove).
//   - Rollback on copy failure — when relocation goes by copy and an element
//     copy fails, every value already constructed in the new block is
//     destroyed, the new block is released, and the array is left exactly as
//     it was before the call.
//   - Explicit lifetime — destroying a value and releasing storage are two
//     separate operations, never conflated; Destroy() does both in order.
//
// Invariant, restored by every operation before it returns (including
// failure paths):
//
//	0 ≤ Len() ≤ Cap(); slots [0, Len()) hold live values,
//	slots [Len(), Cap()) are raw storage and are never read.
//
// Guarantee levels:
//
//	– Growth-path operations (Reserve, and Append/Emplace/Insert when they
//	  reallocate) give the strong guarantee on the copy-relocation path.
//	– In-place Insert/EmplaceAt and EraseAt shift values by move-assignment
//	  and give the basic guarantee only: the array stays valid, but a custom
//	  move that misbehaves can reorder the tail.
//
// Concurrency: none. An Array has a single owner; concurrent use must be
// serialized by the caller.
//
// Precondition violations (index or position out of range, negative sizes)
// panic with a "dynarray:"-prefixed message. Recoverable failures (element
// copy errors, move-only violations) are returned as wrapped errors that
// keep errors.Is working against the element's own error and against
// core.ErrNotCopyable.
package dynarray
