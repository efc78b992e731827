// Package dynarr is a generic dynamic-array container built on explicitly
// managed slot storage: one contiguous owned block, an explicit count of
// live values inside it, and a rollback-safe relocation policy for growth.
//
// 🚀 What is dynarr?
//
//	A small, single-owner container library that separates the two things
//	ordinary slices fuse together:
//		• Storage  — how many slots are allocated (core.RawBuffer)
//		• Liveness — which slots currently hold constructed values (dynarray.Array)
//
// ✨ Why choose dynarr?
//
//   - Explicit lifecycle – construct, copy, move and destroy are first-class,
//     pluggable per element type (core.Lifecycle)
//   - Rollback-safe growth – when relocation goes by copy and an element copy
//     fails mid-way, the array is left exactly as it was before the call
//   - Predictable cost – amortized O(1) append, O(1) swap and move-assign,
//     documented complexity on every operation
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages:
//
//	core/     — slot storage (RawBuffer) and the element capability set (Lifecycle)
//	dynarray/ — the Array container: append, emplace, insert, erase, resize, views
//
// Quick ASCII example:
//
//	capacity = 8
//	[ a ][ b ][ c ][ d ][ . ][ . ][ . ][ . ]
//	 └───── live: size = 4 ────┘ └ raw slots ┘
//
//	slots left of the watermark hold constructed values; slots right of it
//	are storage only and are never read.
//
// Dive into DESIGN.md for the relocation policy and the ownership rules.
//
//	go get github.com/katalvlaran/dynarr/dynarray
package dynarr
