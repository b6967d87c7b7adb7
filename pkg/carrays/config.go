package carrays

import "github.com/underworld/carrays-go/pkg/carrays/logging"

// Config carries the optional knobs for NewWithConfig. The zero value is
// ready to use.
type Config struct {
	// Logger receives allocation and release records. Nil binds to
	// slog.Default() through logging.New.
	Logger logging.Logger

	// EnableZeroization overwrites the storage with zeros before Close
	// releases it. Go heap storage reclaimed by a finalizer is not scrubbed,
	// since a slice from Raw may still be reading it.
	EnableZeroization bool

	// MaxBytes caps the storage a single array may request. Larger requests
	// fail with ErrAllocationFailure. Zero uses the host's physical memory.
	MaxBytes uint64
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}
