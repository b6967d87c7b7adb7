package backend

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	sysmem "github.com/pbnjay/memory"
)

// ErrAllocFailed reports that the allocator could not provide the requested
// storage. The public package remaps it to carrays.ErrAllocationFailure.
var ErrAllocFailed = errors.New("carrays/internal/backend: allocation failed")

// Block is the release handle for storage returned by Alloc. The zero Block
// releases nothing.
type Block struct {
	release func() error
	// gcOwned marks Go heap storage that the collector may reclaim on its own.
	gcOwned bool
}

// NewBlock wraps a release function. gcOwned reports whether the storage is
// Go memory that stays valid while any slice still references it.
func NewBlock(release func() error, gcOwned bool) Block {
	return Block{release: release, gcOwned: gcOwned}
}

// Release hands the storage back to the allocator. Only the first call has an
// effect.
func (b *Block) Release() error {
	if b == nil || b.release == nil {
		return nil
	}
	release := b.release
	b.release = nil
	return release()
}

// Drop gives up the block from a finalizer. Go heap storage is left for the
// collector, since a slice obtained from the owner may still alias it and
// pooling it would hand it to another array. C heap storage is freed.
func (b *Block) Drop() error {
	if b == nil || b.release == nil {
		return nil
	}
	if b.gcOwned {
		b.release = nil
		return nil
	}
	return b.Release()
}

// GCOwned reports whether the storage is Go heap memory.
func (b *Block) GCOwned() bool {
	return b != nil && b.gcOwned
}

// Held reports whether the block still owns storage.
func (b *Block) Held() bool {
	return b != nil && b.release != nil
}

// byteSize returns n*sizeof(T) and false when the product overflows int.
func byteSize[T any](n int) (int, bool) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return 0, true
	}
	if n > math.MaxInt/size {
		return 0, false
	}
	return n * size, true
}

// checkSize rejects requests the allocator cannot serve. A limit of zero means
// the physical memory of the host, when it can be determined.
func checkSize[T any](n int, limit uint64) error {
	size, ok := byteSize[T](n)
	if !ok {
		return fmt.Errorf("%w: %d elements overflow the address space", ErrAllocFailed, n)
	}
	if limit == 0 {
		limit = sysmem.TotalMemory()
	}
	if limit > 0 && uint64(size) > limit {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrAllocFailed, size, limit)
	}
	return nil
}
