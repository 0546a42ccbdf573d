package jsontree

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// DecodeYAML decodes a single YAML document, preserving mapping order.
// An empty document decodes to a null scalar.
func DecodeYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return FromAny(v)
}

// EncodeYAML renders n as a YAML document with object keys in insertion
// order.
func EncodeYAML(n *Node) ([]byte, error) {
	payload, err := yaml.Marshal(n.yamlValue())
	if err != nil {
		return nil, fmt.Errorf("encode YAML: %w", err)
	}
	return payload, nil
}

func (n *Node) yamlValue() any {
	if n == nil {
		return nil
	}

	switch n.kind {
	case KindObject:
		out := make(yaml.MapSlice, 0, len(n.keys))
		for key, child := range n.Fields() {
			out = append(out, yaml.MapItem{Key: key, Value: child.yamlValue()})
		}
		return out
	case KindArray:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.yamlValue()
		}
		return out
	}

	// json.Number is a string type; emit it as a YAML number.
	if num, ok := n.value.(json.Number); ok {
		if i, err := num.Int64(); err == nil {
			return i
		}
		if f, err := num.Float64(); err == nil {
			return f
		}
	}
	return n.value
}
