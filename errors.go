package rope

import "errors"

// Every fallible operation returns exactly one of these kinds, wrapped with
// the offending index or step. Structural operations never partially fail: a
// call either returns a valid rope or an error.
var (
	// ErrIndexOutOfRange reports an index outside [0, Len), after negative
	// normalization.
	ErrIndexOutOfRange = errors.New("rope: index out of range")

	// ErrZeroStep reports a slice step of zero.
	ErrZeroStep = errors.New("rope: slice step cannot be zero")

	// ErrNotImplemented reports a slice step other than one.
	ErrNotImplemented = errors.New("rope: stepped slicing not implemented")
)
