package seq

import "iter"

// Pairs yields every adjacent (previous, current) pair. Sequences shorter
// than two items yield nothing.
func Pairs[T any](items iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var prev T
		first := true

		for item := range items {
			if !first && !yield(prev, item) {
				return
			}
			prev = item
			first = false
		}
	}
}
