// This file declares the table types, load options and sentinel errors.
//
// Errors:
//
//	ErrSourceUnreadable  - a source file could not be opened or read.
//	ErrMalformedRow      - a row has fewer columns than the format requires.
//	ErrMalformedDistance - a capital distance is not a non-negative integer.
//	ErrMalformedDate     - a pinned snapshot date is not an ISO YYYY-MM-DD date.

package dataset

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
)

// Sentinel errors for dataset loading.
var (
	// ErrSourceUnreadable indicates that a source could not be opened or read.
	ErrSourceUnreadable = errors.New("dataset: source unreadable")

	// ErrMalformedRow indicates a delimited row with too few columns.
	ErrMalformedRow = errors.New("dataset: malformed row")

	// ErrMalformedDistance indicates a distance field that is not a non-negative integer.
	ErrMalformedDistance = errors.New("dataset: malformed distance")

	// ErrMalformedDate indicates a pinned snapshot date that does not parse as YYYY-MM-DD.
	ErrMalformedDate = errors.New("dataset: malformed snapshot date")
)

// CanonicalName is a country name with any parenthetical qualifier and
// surrounding whitespace removed. It is the join key across all tables.
type CanonicalName = string

// CountryCode is the short fixed-form country identifier (e.g. "USA").
type CountryCode = string

// CodePair is an ordered pair of country codes keying DistanceTable.
type CodePair struct {
	A CountryCode
	B CountryCode
}

// String renders the pair the way the capital-distance source joins codes.
func (p CodePair) String() string { return p.A + "_" + p.B }

// AdjacencyTable maps a declaring country to its border neighbors, in the
// order they are listed. Adjacency is directed as declared.
type AdjacencyTable map[CanonicalName][]CanonicalName

// CodeTable maps a canonical name to its country code at the latest snapshot.
type CodeTable map[CanonicalName]CountryCode

// DistanceTable maps a code pair to the capital-to-capital distance in km.
// Every loaded row is stored under both orderings.
type DistanceTable map[CodePair]int

// Lookup returns the distance recorded for the pair (a, b).
func (t DistanceTable) Lookup(a, b CountryCode) (int, bool) {
	d, ok := t[CodePair{A: a, B: b}]
	return d, ok
}

// Tables is the result of a full load. It is built once and never mutated.
type Tables struct {
	Borders   AdjacencyTable
	Codes     CodeTable
	Distances DistanceTable
}

// Countries returns the declaring countries of the borders table, sorted.
func (t *Tables) Countries() []CanonicalName {
	names := make([]CanonicalName, 0, len(t.Borders))
	for name := range t.Borders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SourceKind identifies which of the three inputs a SourceError refers to.
type SourceKind string

const (
	SourceBorders         SourceKind = "borders"
	SourceCapitalDistance SourceKind = "capital distances"
	SourceStateNames      SourceKind = "state names"
)

// Sources holds the file locations of the three inputs.
type Sources struct {
	Borders         string // e.g. borders.txt
	CapitalDistance string // e.g. capdist.csv
	StateNames      string // e.g. state_name.tsv
}

// SourceError reports which source failed to load and why.
type SourceError struct {
	Source SourceKind
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("dataset: loading %s from %q: %v", e.Source, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Options configures Load.
type Options struct {
	// Logger receives debug summaries while loading. Defaults to a discard logger.
	Logger *log.Logger

	// SnapshotDate pins the state-name snapshot. Empty means "latest date in the source".
	SnapshotDate string
}

// Option is a functional option for Load.
type Option func(*Options)

// WithLogger routes load diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSnapshotDate keeps only state-name rows dated date (YYYY-MM-DD)
// instead of the latest date present in the source.
func WithSnapshotDate(date string) Option {
	return func(o *Options) {
		o.SnapshotDate = date
	}
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		Logger: log.New(io.Discard),
	}
}
