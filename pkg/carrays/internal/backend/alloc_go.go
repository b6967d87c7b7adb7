//go:build !carrays_cgo || !cgo

package backend

import (
	"fmt"

	"github.com/imgk/memory-go"
)

// Name identifies the allocator compiled into this binary.
func Name() string { return "memory-go" }

// Native reports whether storage is allocated on the C heap.
func Native() bool { return false }

// Alloc returns n zeroed elements of T together with the Block that releases
// them. A zero count allocates nothing and yields a nil slice. Requests above
// limit bytes fail; zero selects the host's physical memory.
func Alloc[T any](n int, limit uint64) (blk Block, buf []T, err error) {
	if n < 0 {
		return Block{}, nil, fmt.Errorf("%w: negative count %d", ErrAllocFailed, n)
	}
	if n == 0 {
		return Block{}, nil, nil
	}
	if err := checkSize[T](n, limit); err != nil {
		return Block{}, nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			blk, buf, err = Block{}, nil, fmt.Errorf("%w: %v", ErrAllocFailed, r)
		}
	}()

	ptr, b, err := memory.Alloc[T](n)
	if err != nil {
		return Block{}, nil, fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}

	// pooled buffers come back dirty
	b = b[:n:n]
	clear(b)

	return NewBlock(func() error { return memory.Free(ptr) }, true), b, nil
}
