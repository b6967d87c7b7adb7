package carrays

import (
	"fmt"
	"unsafe"

	"github.com/underworld/carrays-go/pkg/carrays/logging"
)

// FromPointer wraps length elements starting at ptr as an Array without
// taking ownership. Get and Set are bounds-checked as usual; Close marks the
// array closed but never frees ptr.
//
// The caller guarantees that ptr addresses at least length elements of T for
// as long as the returned array is used. For Go memory the usual cgo and
// unsafe.Pointer rules apply.
func FromPointer[T Numeric](ptr unsafe.Pointer, length int) (*Array[T], error) {
	if length < 0 {
		return nil, &LengthError{Length: length}
	}
	if ptr == nil && length > 0 {
		return nil, fmt.Errorf("%w: nil pointer for %d elements", ErrInvalidLength, length)
	}

	var data []T
	if length > 0 {
		data = unsafe.Slice((*T)(ptr), length)
	}

	return &Array[T]{
		data:   data,
		length: length,
		log:    logging.Discard(),
	}, nil
}
