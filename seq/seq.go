// Package seq provides small helpers for building and consuming single-pass
// [iter.Seq] sequences. The sequence checks in the guard package accept any
// [iter.Seq], and these helpers cover the common cases of lifting values into
// one and probing what a check left behind.
package seq

import "iter"

// Of returns a sequence yielding the given values in order.
func Of[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range values {
			if !yield(value) {
				return
			}
		}
	}
}

// Empty returns a sequence that yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Filter yields the elements of values for which keep returns true.
func Filter[T any](values iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range values {
			if keep(value) {
				if !yield(value) {
					return
				}
			}
		}
	}
}

// Count fully enumerates values and returns the number of elements.
func Count[T any](values iter.Seq[T]) int {
	if values == nil {
		return 0
	}
	var count int
	for range values {
		count++
	}
	return count
}

// First returns the first element of values, if any.
// At most one element is pulled.
func First[T any](values iter.Seq[T]) (T, bool) {
	var (
		val   T
		found bool
	)
	if values == nil {
		return val, false
	}
	for v := range values {
		val = v
		found = true
		break
	}
	return val, found
}
