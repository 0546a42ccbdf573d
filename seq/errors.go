package seq

import "errors"

// ErrOutOfRange indicates a requested index does not exist in the sequence.
var ErrOutOfRange = errors.New("seq: index out of range")
