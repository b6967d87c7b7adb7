package carrays

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"unsafe"

	"github.com/underworld/carrays-go/pkg/carrays/internal/backend"
	"github.com/underworld/carrays-go/pkg/carrays/logging"
)

// Numeric is the closed set of element types an Array can hold.
type Numeric interface {
	float64 | float32 | int32 | uint32
}

// Array is a fixed-length buffer of T. See the package documentation for the
// ownership rules.
type Array[T Numeric] struct {
	data   []T
	length int
	block  backend.Block
	owned  bool
	closed bool
	scrub  bool
	log    logging.Logger
}

// New allocates an array of length zeroed elements.
func New[T Numeric](length int) (*Array[T], error) {
	return NewWithConfig[T](Config{}, length)
}

// NewWithConfig allocates an array of length zeroed elements using cfg.
func NewWithConfig[T Numeric](cfg Config, length int) (*Array[T], error) {
	if length < 0 {
		return nil, &LengthError{Length: length}
	}

	blk, data, err := backend.Alloc[T](length, cfg.MaxBytes)
	if err != nil {
		return nil, remapError(err)
	}

	a := &Array[T]{
		data:   data,
		length: length,
		block:  blk,
		owned:  true,
		scrub:  cfg.EnableZeroization,
		log:    cfg.logger().With("elem", elemName[T](), "len", length),
	}
	a.log.Debug(context.Background(), "array allocated", "backend", backend.Name(), "bytes", a.byteSize())

	runtime.SetFinalizer(a, (*Array[T]).finalize)
	return a, nil
}

// Len returns the fixed length. It keeps answering after Close.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}
	return a.length
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	var zero T
	if err := a.check(i); err != nil {
		return zero, err
	}
	return a.data[i], nil
}

// Set stores v at index i. No other element is touched, and nothing is
// written when an error is returned.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.data[i] = v
	return nil
}

// Raw returns a borrowed view of the storage for native interop.
func (a *Array[T]) Raw() (RawView[T], error) {
	if a == nil || a.closed {
		return RawView[T]{}, ErrClosed
	}
	return RawView[T]{owner: a, data: a.data}, nil
}

// ToSlice returns a copy of the contents.
func (a *Array[T]) ToSlice() ([]T, error) {
	if a == nil || a.closed {
		return nil, ErrClosed
	}
	out := make([]T, a.length)
	copy(out, a.data)
	return out, nil
}

// CopyFrom copies min(len(src), Len()) elements from src into the array and
// returns the number copied.
func (a *Array[T]) CopyFrom(src []T) (int, error) {
	if a == nil || a.closed {
		return 0, ErrClosed
	}
	return copy(a.data, src), nil
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) error {
	if a == nil || a.closed {
		return ErrClosed
	}
	for i := range a.data {
		a.data[i] = v
	}
	return nil
}

// All iterates over index/value pairs. It yields nothing once the array is
// closed.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if a == nil || a.closed {
			return
		}
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Owned reports whether the array owns its storage. Arrays from FromPointer
// do not.
func (a *Array[T]) Owned() bool {
	return a != nil && a.owned
}

// Closed reports whether Close has been called.
func (a *Array[T]) Closed() bool {
	return a == nil || a.closed
}

// Elem names the C element type: "double", "float", "int" or "unsigned".
func (a *Array[T]) Elem() string {
	return elemName[T]()
}

func (a *Array[T]) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s[%d]", a.Elem(), a.length)
}

// Close releases the storage. The first call frees it; later calls are
// no-ops. Close never fails; the error result satisfies io.Closer.
func (a *Array[T]) Close() error {
	if a == nil || a.closed {
		return nil
	}
	a.release()
	runtime.SetFinalizer(a, nil)
	return nil
}

// finalize runs when an unclosed array becomes unreachable. A slice taken
// from Raw may still alias Go heap storage, so that storage is neither
// scrubbed nor pooled; the collector reclaims it once the last alias is gone.
func (a *Array[T]) finalize() {
	if a.closed {
		return
	}
	a.log.Warn(context.Background(), "array was not closed; releasing from finalizer")
	if a.owned && a.scrub && !a.block.GCOwned() {
		Zeroize(a.data)
	}
	a.closed = true
	a.data = nil
	if a.owned {
		if err := a.block.Drop(); err != nil {
			a.log.Warn(context.Background(), "release storage", "error", err)
		}
	}
}

func (a *Array[T]) release() {
	if a.owned && a.scrub {
		Zeroize(a.data)
	}
	a.closed = true
	a.data = nil
	if a.owned {
		if err := a.block.Release(); err != nil {
			a.log.Warn(context.Background(), "release storage", "error", err)
			return
		}
		a.log.Debug(context.Background(), "array released")
	}
}

func (a *Array[T]) check(i int) error {
	if a == nil || a.closed {
		return ErrClosed
	}
	if i < 0 || i >= a.length {
		return &IndexError{Index: i, Len: a.length}
	}
	return nil
}

func (a *Array[T]) byteSize() uintptr {
	var zero T
	return uintptr(a.length) * unsafe.Sizeof(zero)
}

func elemName[T Numeric]() string {
	var zero T
	switch any(zero).(type) {
	case float64:
		return "double"
	case float32:
		return "float"
	case int32:
		return "int"
	case uint32:
		return "unsigned"
	}
	return "unknown"
}
