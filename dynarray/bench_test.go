package dynarray_test

import (
	"testing"

	"github.com/katalvlaran/dynarr/dynarray"
)

// benchmarkAppend is a helper that appends n ints per iteration, optionally
// reserving capacity up front. It resets the timer before entering the loop
// and fails on unexpected errors.
func benchmarkAppend(b *testing.B, n int, reserve bool) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := dynarray.New[int]()
		if reserve {
			if err := a.Reserve(n); err != nil {
				b.Fatalf("Reserve failed: %v", err)
			}
		}
		for v := 0; v < n; v++ {
			if err := a.Append(v); err != nil {
				b.Fatalf("Append failed: %v", err)
			}
		}
	}
}

// BenchmarkAppend_1k measures 1000 appends with doubling growth.
func BenchmarkAppend_1k(b *testing.B) {
	benchmarkAppend(b, 1000, false)
}

// BenchmarkAppend_Reserved_1k measures 1000 appends into pre-reserved
// capacity (zero relocations).
func BenchmarkAppend_Reserved_1k(b *testing.B) {
	benchmarkAppend(b, 1000, true)
}

// BenchmarkInsertFront measures worst-case positional insert: every element
// shifts on each insertion.
func BenchmarkInsertFront(b *testing.B) {
	const n = 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := dynarray.New[int]()
		for v := 0; v < n; v++ {
			if _, err := a.Insert(0, v); err != nil {
				b.Fatalf("Insert failed: %v", err)
			}
		}
	}
}

// BenchmarkEraseFront measures worst-case erase: the whole tail shifts left
// on each removal.
func BenchmarkEraseFront(b *testing.B) {
	const n = 1000
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a := dynarray.New[int]()
		for v := 0; v < n; v++ {
			if err := a.Append(v); err != nil {
				b.Fatalf("Append failed: %v", err)
			}
		}
		b.StartTimer()
		for a.Len() > 0 {
			a.EraseAt(0)
		}
	}
}

// BenchmarkClone measures whole-array copy construction.
func BenchmarkClone(b *testing.B) {
	a := dynarray.New[int]()
	for v := 0; v < 1000; v++ {
		if err := a.Append(v); err != nil {
			b.Fatalf("Append failed: %v", err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := a.Clone()
		if err != nil {
			b.Fatalf("Clone failed: %v", err)
		}
		c.Destroy()
	}
}
