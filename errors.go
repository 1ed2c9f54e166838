package arraylist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for a missing required input or an
	// invalid capacity target.
	ErrInvalidArgument = errors.New("arraylist: invalid argument")

	// ErrIndexOutOfRange is returned when an index, offset or count falls
	// outside the range valid for the operation.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")

	// ErrInvalidState is returned when a cursor is read before its first
	// advance or after it is exhausted.
	ErrInvalidState = errors.New("arraylist: cursor not positioned on an element")

	// ErrConcurrentModification is returned when a cursor is advanced or
	// reset after its list was mutated.
	ErrConcurrentModification = errors.New("arraylist: list modified during iteration")
)

// IndexError describes a rejected index.
//
// It unwraps to ErrIndexOutOfRange.
type IndexError struct {
	Op     string
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("arraylist: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func indexError(op string, index, length int) error {
	return &IndexError{Op: op, Index: index, Length: length}
}
