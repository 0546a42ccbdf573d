package seq

import "iter"

// ChunkOptions controls chunk boundaries. The zero value starts comparing
// against the zero T, drops failing items from both neighbouring chunks and
// emits an empty chunk for each boundary that has nothing pending.
type ChunkOptions[T any] struct {
	// First is the "previous" value compared against the first item.
	First T
	// AppendFails ends the current chunk with the item that broke it.
	AppendFails bool
	// PrependFails starts the next chunk with the item that broke the last one.
	PrependFails bool
	// SkipEmpty suppresses empty chunks at consecutive boundaries.
	SkipEmpty bool
}

// ChunkWhile partitions items into consecutive runs. Each item is compared
// with the item before it (opts.First for the first item); a run continues
// while pred(prev, curr) holds.
func ChunkWhile[T any](items iter.Seq[T], pred func(prev, curr T) bool, opts ChunkOptions[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var chunk []T
		prior := opts.First

		for item := range items {
			if pred(prior, item) {
				chunk = append(chunk, item)
				prior = item
				continue
			}

			if opts.AppendFails {
				chunk = append(chunk, item)
			}

			switch {
			case chunk != nil:
				if !yield(chunk) {
					return
				}
				chunk = nil
			case !opts.SkipEmpty:
				if !yield([]T{}) {
					return
				}
			}

			if opts.PrependFails {
				chunk = append(chunk, item)
			}
			prior = item
		}

		if chunk != nil {
			yield(chunk)
		}
	}
}

// ChunkWhileMatch is ChunkWhile with a predicate that only sees the current
// item.
func ChunkWhileMatch[T any](items iter.Seq[T], pred func(T) bool, opts ChunkOptions[T]) iter.Seq[[]T] {
	return ChunkWhile(items, func(_, curr T) bool { return pred(curr) }, opts)
}
