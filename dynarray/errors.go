package dynarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a nil item or a non-positive capacity.
	ErrInvalidArgument = errors.New("dynarray: invalid argument")

	// ErrOutOfBounds indicates an index outside the live elements.
	ErrOutOfBounds = errors.New("dynarray: index out of bounds")

	// ErrEmpty indicates First or Last on an array with no elements.
	ErrEmpty = fmt.Errorf("%w: array is empty", ErrOutOfBounds)
)

// IndexError reports an index that was outside [0, Count).
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, count %d", ErrOutOfBounds, e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}
