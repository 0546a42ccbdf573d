package jsontree

import "errors"

var (
	// ErrPathElement indicates a path element that is neither a key nor a
	// non-negative index.
	ErrPathElement = errors.New("jsontree: invalid path element")

	// ErrEmptyPath indicates a write without a target element.
	ErrEmptyPath = errors.New("jsontree: empty path")

	// ErrKindMismatch indicates a path element applied to a node of the wrong
	// kind, such as a key on an array.
	ErrKindMismatch = errors.New("jsontree: node kind mismatch")

	// ErrNilNode indicates a write into a nil tree.
	ErrNilNode = errors.New("jsontree: nil node")

	// ErrSyntax indicates a path expression that cannot be parsed.
	ErrSyntax = errors.New("jsontree: syntax error")

	// ErrMalformed indicates input that does not describe a single tree.
	ErrMalformed = errors.New("jsontree: malformed input")

	// ErrUnsupported indicates a Go value with no tree representation.
	ErrUnsupported = errors.New("jsontree: unsupported value")
)
