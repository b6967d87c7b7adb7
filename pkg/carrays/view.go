package carrays

import (
	"unsafe"

	"github.com/underworld/carrays-go/pkg/carrays/internal/backend"
)

// RawView is a borrowed, non-owning view of an array's storage.
//
// The view is valid only until the owning array is closed. Callers must not
// use Pointer or Slice after that, and must not access more than Len elements
// through them. Neither condition is checked.
//
// Pointer and Slice do not keep the array alive. With the default backend a
// slice from Slice keeps the storage itself reachable, and a finalizer leaves
// such storage to the collector instead of reusing it. With the carrays_cgo
// backend the finalizer frees C heap storage, so callers must keep the array
// or the view reachable, for example with runtime.KeepAlive, for as long as
// the pointer or slice is in use.
//
// The zero RawView is empty: Pointer returns nil and Len returns 0.
type RawView[T Numeric] struct {
	owner *Array[T]
	data  []T
}

// Pointer returns the address of the first element, or nil for an empty
// array. The result is suitable for a native parameter of type T*. Keep the
// view or its array reachable while the pointer is in use.
func (v RawView[T]) Pointer() unsafe.Pointer {
	if len(v.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(v.data))
}

// Len returns the number of elements reachable through the view.
func (v RawView[T]) Len() int {
	return len(v.data)
}

// Size returns the size of the viewed storage in bytes.
func (v RawView[T]) Size() uintptr {
	var zero T
	return uintptr(len(v.data)) * unsafe.Sizeof(zero)
}

// IsNil reports whether the view has no addressable storage.
func (v RawView[T]) IsNil() bool {
	return len(v.data) == 0
}

// Slice returns a slice aliasing the storage, or nil for an empty view.
// Writes through it bypass the array's bounds checks but are confined to
// Len elements by the slice itself.
func (v RawView[T]) Slice() []T {
	if len(v.data) == 0 {
		return nil
	}
	return v.data[:len(v.data):len(v.data)]
}

// Native reports whether the storage was allocated on the C heap by this
// package, meaning native code may keep the pointer beyond a single call
// while the array is live.
func (v RawView[T]) Native() bool {
	return v.owner != nil && v.owner.owned && backend.Native()
}
