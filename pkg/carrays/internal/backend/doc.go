// Package backend owns the storage allocator behind the carrays API.
//
// The default build takes element storage from github.com/imgk/memory-go.
// Building with -tags carrays_cgo (and cgo enabled) switches to C.calloc and
// C.free so that the storage lives on the C heap and may be retained by native
// code for as long as the owning array is live. Only this package allocates or
// frees element storage.
package backend
