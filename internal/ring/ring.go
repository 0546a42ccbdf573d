// Package ring implements a fixed-capacity buffer that keeps the most recent
// items of a sequence.
package ring

import (
	"fmt"
	"iter"
)

// Buffer holds at most Cap items. Adding to a full buffer evicts the oldest.
// Storage grows on demand, so a large capacity costs nothing until used.
type Buffer[T any] struct {
	items    []T
	head     int // index of the oldest item once the buffer is full
	capacity int
}

// New panics on a negative capacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("ring: negative capacity %d", capacity))
	}

	return &Buffer[T]{capacity: capacity}
}

// Add stores item and reports the evicted item, if any.
// With capacity 0 the item itself is evicted immediately.
func (b *Buffer[T]) Add(item T) (T, bool) {
	if b.capacity == 0 {
		return item, true
	}

	if len(b.items) < b.capacity {
		b.items = append(b.items, item)
		var zero T
		return zero, false
	}

	evicted := b.items[b.head]
	b.items[b.head] = item
	b.head = (b.head + 1) % b.capacity
	return evicted, true
}

func (b *Buffer[T]) Len() int {
	return len(b.items)
}

func (b *Buffer[T]) Cap() int {
	return b.capacity
}

func (b *Buffer[T]) Full() bool {
	return len(b.items) == b.capacity
}

// At returns the i-th item counting from the oldest.
func (b *Buffer[T]) At(i int) T {
	if i < 0 || i >= len(b.items) {
		panic(fmt.Sprintf("ring: index %d out of range [0:%d]", i, len(b.items)))
	}

	return b.items[(b.head+i)%len(b.items)]
}

// All yields items from oldest to newest.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range len(b.items) {
			if !yield(b.At(i)) {
				return
			}
		}
	}
}

// Backward yields items from newest to oldest.
func (b *Buffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(b.items) - 1; i >= 0; i-- {
			if !yield(b.At(i)) {
				return
			}
		}
	}
}
