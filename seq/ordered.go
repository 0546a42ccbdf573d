package seq

import (
	"cmp"
	"iter"
)

// OrderOptions selects the direction and strictness of a monotonic filter.
type OrderOptions struct {
	// Desc keeps non-increasing keys instead of non-decreasing ones.
	Desc bool
	// Distinct requires strictly increasing (or decreasing) keys.
	Distinct bool
}

func (o OrderOptions) accepts(c int) bool {
	switch {
	case o.Desc && o.Distinct:
		return c < 0
	case o.Desc:
		return c <= 0
	case o.Distinct:
		return c > 0
	default:
		return c >= 0
	}
}

// WhereOrderedBy keeps an item only when its key stays ordered relative to
// the key of the last kept item. Out-of-order items are dropped, never
// reordered. The first item is always kept.
func WhereOrderedBy[T, K any](items iter.Seq[T], key func(T) K, compare func(a, b K) int, opts OrderOptions) iter.Seq[T] {
	return func(yield func(T) bool) {
		var last K
		assigned := false

		for item := range items {
			k := key(item)
			if assigned && !opts.accepts(compare(k, last)) {
				continue
			}

			last = k
			assigned = true
			if !yield(item) {
				return
			}
		}
	}
}

func WhereOrderedFunc[T any](items iter.Seq[T], compare func(a, b T) int, opts OrderOptions) iter.Seq[T] {
	return WhereOrderedBy(items, identity[T], compare, opts)
}

func WhereOrdered[T cmp.Ordered](items iter.Seq[T], opts OrderOptions) iter.Seq[T] {
	return WhereOrderedBy(items, identity[T], cmp.Compare[T], opts)
}

func identity[T any](v T) T {
	return v
}
