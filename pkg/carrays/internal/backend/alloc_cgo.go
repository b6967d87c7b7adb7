//go:build carrays_cgo && cgo

package backend

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Name identifies the allocator compiled into this binary.
func Name() string { return "libc" }

// Native reports whether storage is allocated on the C heap.
func Native() bool { return true }

// Alloc returns n zeroed elements of T on the C heap together with the Block
// that frees them. A zero count allocates nothing and yields a nil slice.
// Requests above limit bytes fail; zero selects the host's physical memory.
func Alloc[T any](n int, limit uint64) (Block, []T, error) {
	if n < 0 {
		return Block{}, nil, fmt.Errorf("%w: negative count %d", ErrAllocFailed, n)
	}
	if n == 0 {
		return Block{}, nil, nil
	}
	if err := checkSize[T](n, limit); err != nil {
		return Block{}, nil, err
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	p := callocElems(n, size)
	if p == nil {
		return Block{}, nil, fmt.Errorf("%w: calloc(%d, %d)", ErrAllocFailed, n, size)
	}

	release := func() error {
		freeElems(p)
		return nil
	}
	return NewBlock(release, false), unsafe.Slice((*T)(p), n), nil
}

// callocElems and freeElems keep the C calls out of generic code.
func callocElems(n, size int) unsafe.Pointer {
	return C.calloc(C.size_t(n), C.size_t(size))
}

func freeElems(p unsafe.Pointer) {
	C.free(p)
}
