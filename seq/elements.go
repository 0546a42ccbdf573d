package seq

import (
	"fmt"
	"iter"
	"slices"

	"github.com/jacoelho/seqtree/internal/ring"
	"github.com/jacoelho/seqtree/internal/stack"
)

// ElementsAt yields the items whose positions fall in r.
//
// Bounds counted from the end need lookback: a from-end end is resolved with
// a buffer of End.Value() items, a from-end start with a buffer of
// Start.Value() items, and in the latter case nothing is yielded until the
// input is exhausted. A range entirely from the start stops reading input at
// the end bound.
func ElementsAt[T any](items iter.Seq[T], r Range) iter.Seq[T] {
	switch {
	case !r.Start.IsFromEnd() && !r.End.IsFromEnd():
		return elementsAtForward(items, r.Start.Value(), r.End.Value())
	case !r.Start.IsFromEnd():
		return elementsAtLagging(items, r.Start.Value(), r.End.Value())
	default:
		return elementsAtTail(items, r)
	}
}

func elementsAtForward[T any](items iter.Seq[T], start, end int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if end <= start {
			return
		}

		for index, item := range Enumerate(items) {
			if index >= start && !yield(item) {
				return
			}
			if index+1 >= end {
				return
			}
		}
	}
}

// elementsAtLagging holds back the last fromEnd items; anything pushed out of
// the buffer is known to precede the end bound.
func elementsAtLagging[T any](items iter.Seq[T], start, fromEnd int) iter.Seq[T] {
	return func(yield func(T) bool) {
		buffer := ring.New[indexed[T]](fromEnd)

		for index, item := range Enumerate(items) {
			evicted, ok := buffer.Add(indexed[T]{item: item, index: index})
			if ok && evicted.index >= start && !yield(evicted.item) {
				return
			}
		}
	}
}

func elementsAtTail[T any](items iter.Seq[T], r Range) iter.Seq[T] {
	return func(yield func(T) bool) {
		endFromStart := !r.End.IsFromEnd()
		if endFromStart && r.End.Value() == 0 {
			return
		}

		buffer := ring.New[indexed[T]](r.Start.Value())
		length := 0

		for index, item := range Enumerate(items) {
			length = index + 1
			evicted, ok := buffer.Add(indexed[T]{item: item, index: index})
			// start is already past evicted.index, so a fixed end at or
			// before it leaves nothing to select.
			if endFromStart && ok && evicted.index+1 >= r.End.Value() {
				return
			}
		}

		start, end := r.Offsets(length)
		for entry := range buffer.All() {
			if entry.index >= end {
				return
			}
			if entry.index >= start && !yield(entry.item) {
				return
			}
		}
	}
}

// ElementsAtIndices yields the item at each requested index, in request
// order. Indices may mix from-start and from-end positions and may repeat.
//
// From-start items are yielded as soon as every earlier request has been
// answered, so a request list without from-end indices stops reading input
// at its largest index. From-end indices are resolved after the input is
// exhausted, from a buffer as deep as the deepest from-end request.
//
// An index that does not exist yields the zero T with an error wrapping
// ErrOutOfRange, and iteration ends.
func ElementsAtIndices[T any](items iter.Seq[T], indices ...Index) iter.Seq2[T, error] {
	requested := slices.Clone(indices)

	return func(yield func(T, error) bool) {
		if len(requested) == 0 {
			return
		}

		wanted, depth := planIndices(requested)
		tail := ring.New[T](depth)
		captured := make(map[int]T, wanted.Size())
		next := 0
		length := 0

		for index, item := range Enumerate(items) {
			length = index + 1
			tail.Add(item)

			if top, ok := wanted.Peek(); ok && top == index {
				captured[index] = item
				wanted.Pop()
			}

			for next < len(requested) && !requested[next].IsFromEnd() && requested[next].Value() <= index {
				if !yield(captured[requested[next].Value()], nil) {
					return
				}
				next++
			}

			if next == len(requested) {
				return
			}
		}

		for _, idx := range requested[next:] {
			item, ok := resolveIndex(idx, captured, tail)
			if !ok {
				var zero T
				yield(zero, fmt.Errorf("%w: %s in sequence of length %d", ErrOutOfRange, idx, length))
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// planIndices returns the distinct from-start offsets with the smallest on
// top, and the deepest from-end offset.
func planIndices(indices []Index) (*stack.Stack[int], int) {
	var offsets []int
	depth := 0

	for _, idx := range indices {
		if idx.IsFromEnd() {
			depth = max(depth, idx.Value())
			continue
		}
		offsets = append(offsets, idx.Value())
	}

	slices.Sort(offsets)
	offsets = slices.Compact(offsets)
	slices.Reverse(offsets)

	wanted := stack.NewWithCapacity[int](len(offsets))
	wanted.Push(offsets...)
	return wanted, depth
}

func resolveIndex[T any](idx Index, captured map[int]T, tail *ring.Buffer[T]) (T, bool) {
	if !idx.IsFromEnd() {
		item, ok := captured[idx.Value()]
		return item, ok
	}

	if idx.Value() == 0 || idx.Value() > tail.Len() {
		var zero T
		return zero, false
	}
	return tail.At(tail.Len() - idx.Value()), true
}
