package seqs

import (
	"iter"
	"slices"
)

// Rest returns the values remaining in it as a push sequence. The sequence
// consumes it and can therefore be ranged over only once.
func Rest[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	return slices.Collect(Rest(it))
}

// Count drains it and returns the number of values it had left.
func Count[T any](it Iterator[T]) int {
	count := 0
	for range Rest(it) {
		count++
	}
	return count
}
