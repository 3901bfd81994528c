package sequencex

import "errors"

// Sentinel errors returned by checked operations. Callers match them with
// errors.Is; the wrapped message carries the operation and offending index.
var (
	// ErrOutOfRange reports an index outside [0, Len()) passed to a checked
	// operation. The operation is rejected before any mutation.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmpty reports an operation that requires at least one live element
	// (Front, Back, RemoveBack) called on an empty sequence.
	ErrEmpty = errors.New("empty sequence")
)
