package carrays

import (
	"errors"
	"fmt"

	"github.com/underworld/carrays-go/pkg/carrays/internal/backend"
)

var (
	// ErrInvalidLength is returned when an array is requested with a negative
	// length, or when a borrowed pointer cannot back the requested length.
	ErrInvalidLength = errors.New("carrays: invalid length")

	// ErrAllocationFailure is returned when storage could not be allocated.
	ErrAllocationFailure = errors.New("carrays: allocation failure")

	// ErrIndexOutOfRange is returned by accessors when the index is outside
	// [0, Len()). The array is left unmodified.
	ErrIndexOutOfRange = errors.New("carrays: index out of range")

	// ErrClosed is returned by accessors once Close has released the array.
	ErrClosed = errors.New("carrays: array closed")
)

// IndexError describes an out-of-range access. It matches ErrIndexOutOfRange
// under errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("carrays: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// LengthError describes a rejected construction length. It matches
// ErrInvalidLength under errors.Is.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("carrays: invalid length %d", e.Length)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// remapError converts backend errors to public API errors.
func remapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrAllocFailed) {
		return fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	return err
}
