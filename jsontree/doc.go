// Package jsontree reads and writes values at paths inside a JSON-like tree.
//
// A tree is made of *Node values, each an object (ordered string keys), an
// array, or a scalar. Paths are sequences of Element, either Key or Index:
//
//	root := jsontree.NewObject()
//	err := root.WritePath(jsontree.NewScalar("x"), jsontree.Key("a"), jsontree.Index(0))
//	// root is now {"a": ["x"]}
//	node, ok, err := root.ReadPath(jsontree.Key("a"), jsontree.Index(0))
//
// WritePath creates missing objects and arrays along the way. ReadPath treats
// a missing child as a normal outcome and reports it with ok == false; only a
// malformed Element is an error.
//
// The tree does not depend on any encoding. DecodeJSON, DecodeYAML, FromAny
// and their counterparts connect it to encoding/json, YAML and plain Go
// values, and Query evaluates RFC 9535 JSONPath expressions against it.
package jsontree
