package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Collection operations. Use [errors.Is] to test
// for them; the concrete error is usually an [*Error] wrapping one of these.
var (
	// ErrInvalidArgument is returned when an operation receives a
	// structurally invalid parameter, such as a chunk size or step below 1.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrSerialization is returned when a collection cannot be encoded or
	// decoded: reference cycles, NaN, channels, malformed documents.
	ErrSerialization = errors.New("collections: serialization failed")

	// ErrNoMatchingItems is returned by FirstOrFail when no item satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)

// Error describes a failed Collection operation.
//
// Kind is one of the package sentinels and Cause, when set, is the lower
// level error (for example [arr.ErrCycle]). Both are visible to
// [errors.Is] and [errors.As]:
//
//	_, err := c.ToJSON()
//	errors.Is(err, collections.ErrSerialization) // true
//	errors.Is(err, arr.ErrCycle)                 // true for self-referencing data
type Error struct {
	// Op is the method that failed, e.g. "Chunk".
	Op string
	// Kind is the error category.
	Kind error
	// Msg is a human-readable detail.
	Msg string
	// Cause is the underlying error, if any.
	Cause error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns Kind and Cause.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func invalidArgument(op, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func serializationError(op string, cause error) error {
	return &Error{Op: op, Kind: ErrSerialization, Cause: cause}
}
