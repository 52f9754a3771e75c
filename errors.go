package molgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilStructure is returned when an engine is created without a
	// structure.
	ErrNilStructure = errors.New("structure must not be nil")
)

// ErrIndexOutOfRange indicates an entity index outside the current row count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIndexOutOfRange struct {
	Index int
	Count int
	cause error
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (count %d)", e.Index, e.Count)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }

// ErrStaleSelection indicates a cached selection result computed against an
// older structure version.
type ErrStaleSelection struct {
	Have uint64
	Want uint64
}

func (e *ErrStaleSelection) Error() string {
	return fmt.Sprintf("stale selection: computed at version %d, structure at %d", e.Have, e.Want)
}
