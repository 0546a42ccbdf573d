package seq

import (
	"fmt"
	"strconv"
)

// Index is a position counted from the start (0-based) or from the end
// (1-based, ^1 is the last element). The zero value is At(0).
type Index struct {
	value   int
	fromEnd bool
}

// At returns a from-start index. It panics if n is negative.
func At(n int) Index {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative index %d", n))
	}
	return Index{value: n}
}

// FromEnd returns a from-end index. It panics if n is negative.
// FromEnd(0) denotes the position just past the last element.
func FromEnd(n int) Index {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative index ^%d", n))
	}
	return Index{value: n, fromEnd: true}
}

func (i Index) Value() int {
	return i.value
}

func (i Index) IsFromEnd() bool {
	return i.fromEnd
}

// Offset resolves i against a sequence of the given length.
// The result is not clamped and may fall outside [0, length].
func (i Index) Offset(length int) int {
	if i.fromEnd {
		return length - i.value
	}
	return i.value
}

func (i Index) String() string {
	if i.fromEnd {
		return "^" + strconv.Itoa(i.value)
	}
	return strconv.Itoa(i.value)
}

// Range is a start-inclusive, end-exclusive span of positions.
type Range struct {
	Start Index
	End   Index
}

func Between(start, end Index) Range {
	return Range{Start: start, End: end}
}

// From spans start through the last element.
func From(start Index) Range {
	return Range{Start: start, End: FromEnd(0)}
}

// Until spans the first element up to end.
func Until(end Index) Range {
	return Range{Start: At(0), End: end}
}

// Offsets resolves both bounds against length and clamps them to
// [0, length]. The span is empty when end <= start.
func (r Range) Offsets(length int) (start, end int) {
	start = min(max(r.Start.Offset(length), 0), length)
	end = min(max(r.End.Offset(length), 0), length)
	return start, end
}

func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}
