package carrays

import "github.com/underworld/carrays-go/pkg/carrays/internal/backend"

// Version is populated at build time via -ldflags.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version of this module. In development
// it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// BackendName reports which storage allocator was compiled in: "memory-go"
// by default, "libc" when built with -tags carrays_cgo.
func BackendName() string {
	return backend.Name()
}

// NativeBackend reports whether array storage lives on the C heap.
func NativeBackend() bool {
	return backend.Native()
}
