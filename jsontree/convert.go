package jsontree

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/goccy/go-yaml"
)

// FromAny builds a tree from plain Go values as produced by encoding/json or
// YAML decoders. map[string]any keys are sorted; yaml.MapSlice keeps its
// order. An existing *Node is cloned.
func FromAny(v any) (*Node, error) {
	switch val := v.(type) {
	case *Node:
		return val.Clone(), nil
	case map[string]any:
		out := NewObject()
		for _, key := range slices.Sorted(maps.Keys(val)) {
			child, err := FromAny(val[key])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out.Set(key, child)
		}
		return out, nil
	case yaml.MapSlice:
		out := NewObject()
		for _, item := range val {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			child, err := FromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out.Set(key, child)
		}
		return out, nil
	case []any:
		out := &Node{kind: KindArray, items: make([]*Node, 0, len(val))}
		for i, item := range val {
			child, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out.items = append(out.items, child)
		}
		return out, nil
	}

	if isScalar(v) {
		return NewScalar(v), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, bool, string, json.Number, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// Any converts n to map[string]any, []any and scalar values. Object key
// order is lost.
func (n *Node) Any() any {
	if n == nil {
		return nil
	}

	switch n.kind {
	case KindObject:
		out := make(map[string]any, len(n.keys))
		for key, child := range n.Fields() {
			out[key] = child.Any()
		}
		return out
	case KindArray:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Any()
		}
		return out
	}
	return n.value
}
