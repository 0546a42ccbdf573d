package jsontree

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

const (
	KindScalar Kind = iota
	KindObject
	KindArray
)

// Kind identifies which variant a Node holds.
type Kind uint8

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is one value in a tree. The zero value is a null scalar.
//
// Nodes hold no reference to their parent, so the same *Node may be attached
// in several places; writes through one location are visible at the others.
type Node struct {
	kind   Kind
	keys   []string // insertion order of fields
	fields map[string]*Node
	items  []*Node
	value  any
}

func NewObject() *Node {
	return &Node{kind: KindObject, fields: make(map[string]*Node)}
}

// NewArray creates an array holding items. Nil items become null scalars.
func NewArray(items ...*Node) *Node {
	n := &Node{kind: KindArray, items: make([]*Node, 0, len(items))}
	n.Append(items...)
	return n
}

// NewScalar wraps v without checking its type; FromAny validates.
func NewScalar(v any) *Node {
	return &Node{kind: KindScalar, value: v}
}

func Null() *Node {
	return &Node{}
}

func (n *Node) Kind() Kind {
	return n.kind
}

// IsNull reports whether n is a scalar holding nil.
func (n *Node) IsNull() bool {
	return n.kind == KindScalar && n.value == nil
}

// Value returns the scalar value, or nil for containers.
func (n *Node) Value() any {
	if n.kind != KindScalar {
		return nil
	}
	return n.value
}

// Len returns the number of fields or items; scalars have length 0.
func (n *Node) Len() int {
	switch n.kind {
	case KindObject:
		return len(n.keys)
	case KindArray:
		return len(n.items)
	}
	return 0
}

// Keys returns object keys in insertion order.
func (n *Node) Keys() []string {
	return slices.Clone(n.keys)
}

// Get returns the field named key. It reports false for non-objects.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindObject {
		return nil, false
	}
	child, ok := n.fields[key]
	return child, ok
}

// Set assigns a field, keeping the position of an existing key.
// It panics if n is not an object.
func (n *Node) Set(key string, child *Node) {
	n.mustBe(KindObject, "Set")
	if child == nil {
		child = Null()
	}
	if _, ok := n.fields[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.fields[key] = child
}

// Delete removes a field and reports whether it existed.
func (n *Node) Delete(key string) bool {
	if n.kind != KindObject {
		return false
	}
	if _, ok := n.fields[key]; !ok {
		return false
	}
	delete(n.fields, key)
	n.keys = slices.DeleteFunc(n.keys, func(k string) bool { return k == key })
	return true
}

// At returns the i-th item. It reports false for non-arrays and for i out
// of range.
func (n *Node) At(i int) (*Node, bool) {
	if n.kind != KindArray || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// SetAt assigns the i-th item, padding the array with null scalars when i is
// past the end. It panics if n is not an array or i is negative.
func (n *Node) SetAt(i int, child *Node) {
	n.mustBe(KindArray, "SetAt")
	if i < 0 {
		panic(fmt.Sprintf("jsontree: SetAt with negative index %d", i))
	}
	if child == nil {
		child = Null()
	}
	for len(n.items) <= i {
		n.items = append(n.items, Null())
	}
	n.items[i] = child
}

// Append adds items to an array. It panics if n is not an array.
func (n *Node) Append(items ...*Node) {
	n.mustBe(KindArray, "Append")
	for _, item := range items {
		if item == nil {
			item = Null()
		}
		n.items = append(n.items, item)
	}
}

// Fields yields object fields in insertion order.
func (n *Node) Fields() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if n.kind != KindObject {
			return
		}
		for _, key := range n.keys {
			if !yield(key, n.fields[key]) {
				return
			}
		}
	}
}

// Items yields array items with their index.
func (n *Node) Items() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if n.kind != KindArray {
			return
		}
		for i, item := range n.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Scalar values are copied by assignment.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	switch n.kind {
	case KindObject:
		out := NewObject()
		for key, child := range n.Fields() {
			out.Set(key, child.Clone())
		}
		return out
	case KindArray:
		out := &Node{kind: KindArray, items: make([]*Node, len(n.items))}
		for i, item := range n.items {
			out.items[i] = item.Clone()
		}
		return out
	}
	return NewScalar(n.value)
}

// Equal reports whether a and b describe the same tree. Object key order is
// ignored; scalars are compared with reflect.DeepEqual.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || a.Len() != b.Len() {
		return false
	}

	switch a.kind {
	case KindObject:
		for key, child := range a.Fields() {
			other, ok := b.fields[key]
			if !ok || !Equal(child, other) {
				return false
			}
		}
		return true
	case KindArray:
		for i, item := range a.items {
			if !Equal(item, b.items[i]) {
				return false
			}
		}
		return true
	}
	return reflect.DeepEqual(a.value, b.value)
}

func (n *Node) mustBe(kind Kind, op string) {
	if n.kind != kind {
		panic(fmt.Sprintf("jsontree: %s on %s node", op, n.kind))
	}
}
