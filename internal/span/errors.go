package span

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange matches every *OutOfRangeError.
	ErrOutOfRange = errors.New("span: out of range")
	// ErrIO matches every *IOError.
	ErrIO = errors.New("span: io error")
	// ErrInvalidSource is returned when a Span has no usable source, which only
	// happens for the zero Span.
	ErrInvalidSource = errors.New("span: invalid source")
	// ErrInvalidChunkSize is returned by Split for a zero chunk size.
	ErrInvalidChunkSize = errors.New("span: invalid chunk size")
)

// OutOfRangeError reports a window that does not fit the extent it was
// checked against. It is a caller bug and is never worth retrying.
type OutOfRangeError struct {
	Requested Window
	Available uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("span: out of range: requested %s, available %d", e.Requested, e.Available)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// IOError reports a filesystem failure while probing, opening or reading Path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("span: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// IsTransient reports whether err came from the environment rather than from
// a bad request, so that a caller may retry the whole operation.
func IsTransient(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

func outOfRange(requested Window, available uint64) error {
	return &OutOfRangeError{Requested: requested, Available: available}
}
