package carrays

import "runtime"

// Zeroize overwrites buf with zeros and keeps the stores from being
// eliminated by the compiler (golang/go#33325).
func Zeroize[T Numeric](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
