package jsontree

import "fmt"

// ReadPath walks path from n and returns the node found there.
//
// A missing key, an index past the end, or an element that does not fit the
// node it is applied to (a key on an array, anything on a scalar) ends the
// walk with ok == false and a nil error. The only error is a malformed
// element, detected before the walk starts. An empty path returns n itself.
func (n *Node) ReadPath(path ...Element) (*Node, bool, error) {
	if err := Path(path).Validate(); err != nil {
		return nil, false, err
	}
	if n == nil {
		return nil, false, nil
	}

	node := n
	for _, elem := range path {
		next, ok := node.child(elem)
		if !ok {
			return nil, false, nil
		}
		node = next
	}

	return node, true, nil
}

// WritePath stores value at path below n, overwriting whatever was there.
//
// Missing intermediate nodes, including null scalars, are replaced with a new
// object when the following element is a Key and a new array when it is an
// Index. Writing an index past the end of an array pads it with nulls. A nil
// value is stored as a null scalar; a non-nil value is attached, not copied.
//
// The tree is left untouched when an error is returned: the path is
// validated up front, and a kind mismatch can only be met on existing nodes,
// before anything has been created.
func (n *Node) WritePath(value *Node, path ...Element) error {
	if n == nil {
		return ErrNilNode
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if err := Path(path).Validate(); err != nil {
		return err
	}

	node := n
	last := len(path) - 1

	for i, elem := range path[:last] {
		if err := node.accepts(elem, path[:i]); err != nil {
			return err
		}

		next, ok := node.child(elem)
		if !ok || next.IsNull() {
			next = containerFor(path[i+1])
			node.assign(elem, next)
		}
		node = next
	}

	if err := node.accepts(path[last], path[:last]); err != nil {
		return err
	}
	node.assign(path[last], value)
	return nil
}

func (n *Node) child(elem Element) (*Node, bool) {
	if key, ok := elem.Key(); ok {
		return n.Get(key)
	}
	index, _ := elem.Index()
	return n.At(index)
}

// accepts checks that elem can be applied to n; at is the path leading to n.
func (n *Node) accepts(elem Element, at Path) error {
	want := KindArray
	if _, ok := elem.Key(); ok {
		want = KindObject
	}
	if n.kind != want {
		return fmt.Errorf("%w: %s is %s, cannot apply %s", ErrKindMismatch, at, n.kind, elem)
	}
	return nil
}

func (n *Node) assign(elem Element, value *Node) {
	if key, ok := elem.Key(); ok {
		n.Set(key, value)
		return
	}
	index, _ := elem.Index()
	n.SetAt(index, value)
}

func containerFor(next Element) *Node {
	if _, ok := next.Key(); ok {
		return NewObject()
	}
	return NewArray()
}
