// This file declares the resolution result, options and sentinel errors.

package atlas

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Unknown is the legacy sentinel returned by Distance for both an unknown
// country and an unknown distance.
const Unknown = -1

// ErrNilTables is returned by New when no tables are supplied.
var ErrNilTables = errors.New("atlas: tables are nil")

// Status classifies the outcome of a Resolve call.
type Status int

const (
	// Resolved means a capital distance was found.
	Resolved Status = iota

	// UnknownCountry means at least one name is not a declaring country.
	UnknownCountry

	// UnknownDistance means both countries are known but no distance could
	// be resolved: a code is missing, the pair was never recorded, or the
	// pair is a country with itself without declared self-adjacency.
	UnknownDistance
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case UnknownCountry:
		return "unknown country"
	case UnknownDistance:
		return "unknown distance"
	default:
		return "invalid status"
	}
}

// Resolution is the tagged result of resolving the distance between two
// countries. Km is meaningful only when Status == Resolved.
type Resolution struct {
	Status Status
	Km     int
}

// Known reports whether a distance was resolved.
func (r Resolution) Known() bool { return r.Status == Resolved }

// Int returns Km, or Unknown when no distance was resolved.
func (r Resolution) Int() int {
	if r.Status != Resolved {
		return Unknown
	}
	return r.Km
}

// Options configures New.
type Options struct {
	// Logger receives a debug summary of the built graph.
	Logger *log.Logger
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger routes build diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}
