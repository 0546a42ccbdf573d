package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jacoelho/seqtree/internal/stack"
)

// containerFrame tracks an open object or array while decoding.
type containerFrame struct {
	node    *Node
	needKey bool   // true if object expects a key next
	key     string // last key read for an object
}

type decoder struct {
	dec    *json.Decoder
	frames *stack.Stack[containerFrame]
}

// DecodeJSON reads exactly one JSON value from r. Object key order is
// preserved and numbers are kept as json.Number.
func DecodeJSON(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	d := &decoder{dec: dec, frames: stack.New[containerFrame]()}
	root, err := d.decode()
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformed)
	}

	return root, nil
}

func (d *decoder) decode() (*Node, error) {
	var root *Node

	for {
		tok, err := d.dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: unexpected end of input at %s", ErrMalformed, d.path())
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v at %s", ErrMalformed, err, d.path())
		}

		if delim, ok := tok.(json.Delim); ok && (delim == '}' || delim == ']') {
			d.frames.Pop()
			if d.frames.IsEmpty() {
				return root, nil
			}
			d.valueDone()
			continue
		}

		if top := d.frames.PeekRef(); top != nil && top.needKey {
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: object key is %T at %s", ErrMalformed, tok, d.path())
			}
			top.key = key
			top.needKey = false
			continue
		}

		node := nodeFromToken(tok)
		if root == nil {
			root = node
		} else {
			d.attach(node)
		}

		switch node.kind {
		case KindObject:
			d.frames.Push(containerFrame{node: node, needKey: true})
		case KindArray:
			d.frames.Push(containerFrame{node: node})
		default:
			if d.frames.IsEmpty() {
				return root, nil
			}
			d.valueDone()
		}
	}
}

func (d *decoder) attach(node *Node) {
	top := d.frames.PeekRef()
	if top.node.kind == KindObject {
		top.node.Set(top.key, node)
		return
	}
	top.node.Append(node)
}

func (d *decoder) valueDone() {
	if top := d.frames.PeekRef(); top != nil && top.node.kind == KindObject {
		top.needKey = true
	}
}

// path describes the position being decoded, for error messages.
func (d *decoder) path() Path {
	var p Path
	for frame := range d.frames.All() {
		switch {
		case frame.node.kind == KindArray:
			p = append(p, Index(frame.node.Len()))
		case !frame.needKey:
			p = append(p, Key(frame.key))
		}
	}
	return p
}

func nodeFromToken(tok json.Token) *Node {
	if delim, ok := tok.(json.Delim); ok {
		if delim == '{' {
			return NewObject()
		}
		return NewArray()
	}
	return NewScalar(tok)
}

// MarshalJSON encodes n with object keys in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces n with the decoded tree.
func (n *Node) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*n = *decoded
	return nil
}

func (n *Node) encodeJSON(buf *bytes.Buffer) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	switch n.kind {
	case KindObject:
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encoded, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(encoded)
			buf.WriteByte(':')
			if err := n.fields[key].encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case KindArray:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		encoded, err := json.Marshal(n.value)
		if err != nil {
			return fmt.Errorf("encode scalar %T: %w", n.value, err)
		}
		buf.Write(encoded)
	}

	return nil
}
