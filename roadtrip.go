package roadtrip

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/roadtrip/atlas"
	"github.com/katalvlaran/roadtrip/bfs"
	"github.com/katalvlaran/roadtrip/dataset"
	"github.com/katalvlaran/roadtrip/dijkstra"
)

// ErrUnknownCountry is returned by Route when either name is not a
// declaring country of the borders source.
var ErrUnknownCountry = errors.New("roadtrip: unknown country")

// Trip answers distance and route queries over a loaded Atlas.
type Trip struct {
	atlas  *atlas.Atlas
	logger *log.Logger
}

// New loads the three sources and builds a Trip. Any load failure is
// returned as a *dataset.SourceError; no partial Trip is ever returned.
func New(ctx context.Context, src dataset.Sources, opts ...Option) (*Trip, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tables, err := dataset.Load(ctx, src,
		dataset.WithLogger(o.Logger),
		dataset.WithSnapshotDate(o.SnapshotDate),
	)
	if err != nil {
		return nil, err
	}

	return fromTables(tables, o)
}

// FromTables builds a Trip over already loaded tables. SnapshotDate is
// ignored since no loading takes place.
func FromTables(t *dataset.Tables, opts ...Option) (*Trip, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return fromTables(t, o)
}

func fromTables(t *dataset.Tables, o Options) (*Trip, error) {
	a, err := atlas.New(t, atlas.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}
	return &Trip{atlas: a, logger: o.Logger}, nil
}

// Atlas returns the underlying graph model.
func (t *Trip) Atlas() *atlas.Atlas { return t.atlas }

// GetDistance returns the capital distance in km between two declaring
// countries, or -1 when either is unknown or no distance is recorded.
// The countries need not share a border.
func (t *Trip) GetDistance(a, b string) int {
	return t.atlas.Distance(a, b)
}

// Route returns the hops of the path from a to b with the least total
// capital distance, using only borders whose distance is known.
//
// It returns ErrUnknownCountry if either name is not a declaring country,
// and an empty slice when a == b or no such path exists. Each Step resolves
// its own distance again rather than reusing the search weights.
func (t *Trip) Route(a, b string) ([]Step, error) {
	if !t.atlas.Has(a) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, a)
	}
	if !t.atlas.Has(b) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, b)
	}
	if a == b {
		return []Step{}, nil
	}

	dist, prev, err := dijkstra.Dijkstra(t.atlas.Graph(),
		dijkstra.Source(a),
		dijkstra.Target(b),
		dijkstra.WithWeightFunc(t.atlas.Weight),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return nil, fmt.Errorf("roadtrip: route %q → %q: %w", a, b, err)
	}

	path := dijkstra.PathTo(prev, a, b)
	if len(path) < 2 {
		t.logger.Debug("no route", "from", a, "to", b)
		return []Step{}, nil
	}

	steps := make([]Step, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		r := t.atlas.Resolve(path[i-1], path[i])
		steps = append(steps, Step{
			From:  path[i-1],
			To:    path[i],
			Km:    r.Km,
			Known: r.Known(),
		})
	}
	t.logger.Debug("route", "from", a, "to", b, "hops", len(steps), "km", dist[b])

	return steps, nil
}

// FindPath renders Route as display lines. Unknown countries, a == b and
// unreachable targets all yield an empty slice.
func (t *Trip) FindPath(a, b string) []string {
	steps, err := t.Route(a, b)
	if err != nil {
		return []string{}
	}
	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = s.String()
	}
	return lines
}

// Connected reports whether a chain of declared borders leads from a to b,
// whatever the capital distances. A known country is connected to itself.
func (t *Trip) Connected(a, b string) bool {
	if !t.atlas.Has(a) || !t.atlas.Has(b) {
		return false
	}
	res, err := bfs.BFS(t.atlas.Graph(), a)
	if err != nil {
		t.logger.Debug("reachability failed", "from", a, "err", err)
		return false
	}
	return res.Reached(b)
}
