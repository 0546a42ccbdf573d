package seq

import "iter"

// indexed pairs a buffered item with its position in the input.
type indexed[T any] struct {
	item  T
	index int
}

// Enumerate yields each item with its 0-based position.
func Enumerate[T any](items iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for item := range items {
			if !yield(index, item) {
				return
			}
			index++
		}
	}
}
