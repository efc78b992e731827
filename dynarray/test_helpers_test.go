package dynarray_test

import (
	"errors"

	"github.com/katalvlaran/dynarr/core"
	"github.com/katalvlaran/dynarr/dynarray"
)

// errCopyBoom simulates an element whose copy construction fails.
var errCopyBoom = errors.New("copy boom")

// elem is the instrumented element type used across the package tests.
type elem struct {
	v int
}

// counter tallies every lifecycle operation performed on elem values, and
// can be armed to fail a specific copy call (1-based) to exercise the
// rollback paths.
type counter struct {
	constructs int
	copies     int
	moves      int
	destroys   int

	failCopyAt int // when > 0, copy call number failCopyAt returns errCopyBoom
}

// opts returns the lifecycle options wiring elem's capabilities to the
// counter, with any extra options (e.g. WithFragileMove) appended.
func (c *counter) opts(extra ...core.LifecycleOption[elem]) []core.LifecycleOption[elem] {
	base := []core.LifecycleOption[elem]{
		core.WithConstruct[elem](func() elem {
			c.constructs++

			return elem{}
		}),
		core.WithCopy[elem](func(v elem) (elem, error) {
			c.copies++
			if c.failCopyAt > 0 && c.copies == c.failCopyAt {
				return elem{}, errCopyBoom
			}

			return v, nil
		}),
		core.WithMove[elem](func(src *elem) elem {
			c.moves++
			v := *src
			*src = elem{}

			return v
		}),
		core.WithDestroy[elem](func(slot *elem) {
			c.destroys++
			*slot = elem{}
		}),
	}

	return append(base, extra...)
}

// newCounted builds an empty counted array plus its counter.
func newCounted(extra ...core.LifecycleOption[elem]) (*dynarray.Array[elem], *counter) {
	c := &counter{}

	return dynarray.New[elem](c.opts(extra...)...), c
}

// fillCounted appends elems 0..n-1 after reserving exact capacity, so the
// fill itself performs no relocation.
func fillCounted(a *dynarray.Array[elem], n int) error {
	if err := a.Reserve(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := a.Append(elem{v: i}); err != nil {
			return err
		}
	}

	return nil
}

// values flattens the live range into the stored ints.
func values(a *dynarray.Array[elem]) []int {
	out := make([]int, 0, a.Len())
	for _, e := range a.All() {
		out = append(out, e.v)
	}

	return out
}

// ints flattens a plain int array the same way.
func ints(a *dynarray.Array[int]) []int {
	out := make([]int, 0, a.Len())
	for _, v := range a.All() {
		out = append(out, v)
	}

	return out
}
