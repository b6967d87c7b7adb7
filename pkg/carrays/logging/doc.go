// Package logging provides the small logging facade used by carrays.
//
// Logger wraps the subset of log/slog that the array lifecycle needs. Arrays
// log allocation and release at Debug level and warn when a finalizer has to
// release storage that was never closed:
//
//	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//	arr, err := carrays.NewWithConfig[float64](carrays.Config{Logger: logger}, 16)
//
// Passing nil to New binds to slog.Default(). Discard returns a Logger that
// drops every record. Element values are never logged.
package logging
