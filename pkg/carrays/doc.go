// Package carrays provides fixed-length numeric arrays for exchanging flat
// buffers with native code.
//
// An Array owns a contiguous, zero-initialised buffer of one numeric element
// type. Its length is fixed at construction. Get and Set are bounds-checked
// and report ErrIndexOutOfRange instead of touching memory outside the buffer.
// Raw exports the buffer as a RawView, a borrowed view whose base address can
// be handed to native call sites expecting a plain T*.
//
// The element types form a closed set, one instantiation per C type:
//
//	DoubleArray   = Array[float64]  // double
//	FloatArray    = Array[float32]  // float
//	IntArray      = Array[int32]    // int
//	UnsignedArray = Array[uint32]   // unsigned int
//
// # Ownership
//
// Storage is allocated exactly once by New and released by Close. Close is
// idempotent: the first call releases the storage and later calls do nothing.
// After Close every accessor fails with ErrClosed, except Len which keeps
// reporting the original length. An array that becomes unreachable without
// being closed is released by a finalizer and a warning is logged.
//
// A RawView does not own the storage. It keeps the array reachable so the
// finalizer cannot run underneath it, but it does not survive Close. Using
// the pointer after Close, or writing more than Len elements through it, is
// undefined and is not checked.
//
// # Storage
//
// The default build allocates through github.com/imgk/memory-go, so storage
// is Go memory and native code may only use the pointer for the duration of a
// call. Building with -tags carrays_cgo allocates with C.calloc instead; that
// storage may be retained by native code while the array is live.
//
// # Concurrency
//
// Arrays carry no locks. Callers sharing one across goroutines must
// serialise access themselves.
package carrays
