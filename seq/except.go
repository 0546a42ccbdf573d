package seq

import (
	"iter"

	"github.com/jacoelho/seqtree/internal/ring"
)

// ExceptElementAt yields every item except the one at i. An index past
// either end of the sequence removes nothing.
func ExceptElementAt[T any](items iter.Seq[T], i Index) iter.Seq[T] {
	if i.IsFromEnd() {
		return exceptFromEnd(items, i.Value())
	}
	return exceptAt(items, i.Value())
}

func exceptAt[T any](items iter.Seq[T], skip int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for index, item := range Enumerate(items) {
			if index != skip && !yield(item) {
				return
			}
		}
	}
}

func exceptFromEnd[T any](items iter.Seq[T], fromEnd int) iter.Seq[T] {
	return func(yield func(T) bool) {
		buffer := ring.New[T](fromEnd)

		for item := range items {
			if evicted, ok := buffer.Add(item); ok && !yield(evicted) {
				return
			}
		}

		// The oldest buffered item is ^fromEnd only if the buffer filled up.
		first := 0
		if buffer.Full() {
			first = 1
		}
		for i := first; i < buffer.Len(); i++ {
			if !yield(buffer.At(i)) {
				return
			}
		}
	}
}

// ExceptElementsAt yields every item whose position falls outside r.
// Buffering mirrors ElementsAt: from-end bounds hold back as many items as
// their offset until the input is exhausted.
func ExceptElementsAt[T any](items iter.Seq[T], r Range) iter.Seq[T] {
	switch {
	case !r.Start.IsFromEnd() && !r.End.IsFromEnd():
		return exceptForward(items, r.Start.Value(), r.End.Value())
	case !r.Start.IsFromEnd():
		return exceptLagging(items, r.Start.Value(), r.End.Value())
	default:
		return exceptTail(items, r)
	}
}

func exceptForward[T any](items iter.Seq[T], start, end int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for index, item := range Enumerate(items) {
			if (index < start || index >= end) && !yield(item) {
				return
			}
		}
	}
}

// exceptLagging releases items before start as they leave the buffer; the
// last fromEnd items are past the end bound and are always kept.
func exceptLagging[T any](items iter.Seq[T], start, fromEnd int) iter.Seq[T] {
	return func(yield func(T) bool) {
		buffer := ring.New[indexed[T]](fromEnd)

		for index, item := range Enumerate(items) {
			evicted, ok := buffer.Add(indexed[T]{item: item, index: index})
			if ok && evicted.index < start && !yield(evicted.item) {
				return
			}
		}

		for entry := range buffer.All() {
			if !yield(entry.item) {
				return
			}
		}
	}
}

// exceptTail handles a from-end start with either kind of end. Items pushed
// out of the buffer precede the start bound; the buffered tail is filtered
// once the length is known.
func exceptTail[T any](items iter.Seq[T], r Range) iter.Seq[T] {
	return func(yield func(T) bool) {
		buffer := ring.New[indexed[T]](r.Start.Value())
		length := 0

		for index, item := range Enumerate(items) {
			length = index + 1
			evicted, ok := buffer.Add(indexed[T]{item: item, index: index})
			if ok && !yield(evicted.item) {
				return
			}
		}

		start, end := r.Offsets(length)
		for entry := range buffer.All() {
			if (entry.index < start || entry.index >= end) && !yield(entry.item) {
				return
			}
		}
	}
}
