package jsontree

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	elementInvalid elementKind = iota
	elementKey
	elementIndex
)

type elementKind uint8

// Element is one step of a path: a Key into an object or an Index into an
// array. The zero Element is malformed.
type Element struct {
	kind  elementKind
	key   string
	index int
}

func Key(name string) Element {
	return Element{kind: elementKey, key: name}
}

// Index addresses an array item. A negative i produces a malformed element,
// reported as ErrPathElement when the path is used.
func Index(i int) Element {
	return Element{kind: elementIndex, index: i}
}

// Key returns the key name and whether e is a key.
func (e Element) Key() (string, bool) {
	return e.key, e.kind == elementKey
}

// Index returns the position and whether e is an index.
func (e Element) Index() (int, bool) {
	return e.index, e.kind == elementIndex
}

func (e Element) validate() error {
	switch e.kind {
	case elementKey:
		return nil
	case elementIndex:
		if e.index < 0 {
			return fmt.Errorf("%w: negative index %d", ErrPathElement, e.index)
		}
		return nil
	}
	return fmt.Errorf("%w: element is neither a key nor an index", ErrPathElement)
}

func (e Element) String() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e Element) writeTo(b *strings.Builder) {
	switch e.kind {
	case elementKey:
		if isBareName(e.key) {
			b.WriteByte('.')
			b.WriteString(e.key)
			return
		}
		b.WriteString("['")
		for i := range len(e.key) {
			if c := e.key[i]; c == '\'' || c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(e.key[i])
		}
		b.WriteString("']")
	case elementIndex:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(e.index))
		b.WriteByte(']')
	default:
		b.WriteString("[?]")
	}
}

// Path is an ordered sequence of elements starting at a root node.
type Path []Element

// Validate reports the first malformed element.
func (p Path) Validate() error {
	for i, e := range p {
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w (element %d of %s)", err, i, p)
		}
	}
	return nil
}

// String renders the canonical form accepted by ParsePath, e.g.
// $.store.book[0]['first name'].
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, e := range p {
		e.writeTo(&b)
	}
	return b.String()
}

func isBareName(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !idRune(s[i]) {
			return false
		}
	}
	return true
}

// idRune checks if a byte is valid for unquoted names after '.'.
func idRune(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_' || b == '-'
}
