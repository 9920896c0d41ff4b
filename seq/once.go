package seq

import (
	"iter"
	"sync/atomic"
)

// Once wraps values in a sequence that may be enumerated at most one time.
// A second enumeration panics. This makes multi-pass consumption of a
// sequence fail loudly, and it is how the guard package's single-enumeration
// behavior is verified in tests.
func Once[T any](values iter.Seq[T]) iter.Seq[T] {
	var used atomic.Bool
	return func(yield func(T) bool) {
		if used.Swap(true) {
			panic("sequence enumerated more than once")
		}
		values(yield)
	}
}
