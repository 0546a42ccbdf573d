// Package seq provides lazy transformations over range-over-func sequences.
//
// Every function returns a new single-pass iterator and reads its input only
// as far as the consumer pulls. Helpers that address positions relative to
// the end of a sequence keep a bounded lookback buffer sized to the requested
// offset, so memory is O(offset) rather than O(len):
//
//   - ChunkWhile, ChunkWhileMatch: split into runs while a predicate holds
//   - ElementsAt, ElementsAtIndices: select a range or a list of positions
//   - ExceptElementAt, ExceptElementsAt: drop a position or a range
//   - Pairs: adjacent (previous, current) tuples
//   - WhereOrdered, WhereOrderedBy, WhereOrderedFunc: running monotonic filter
//
// Positions are expressed with Index (from the start with At, from the end
// with FromEnd) and Range.
package seq
