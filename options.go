package roadtrip

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures New and FromTables.
type Options struct {
	// Logger receives debug diagnostics from loading, building and routing.
	Logger *log.Logger

	// SnapshotDate pins the state-name snapshot (YYYY-MM-DD). Empty selects
	// the latest date found in the source.
	SnapshotDate string
}

// Option is a functional option for New and FromTables.
type Option func(*Options)

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSnapshotDate pins the state-name snapshot date.
func WithSnapshotDate(date string) Option {
	return func(o *Options) {
		o.SnapshotDate = date
	}
}

// DefaultOptions returns a discard logger and the latest snapshot.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}
