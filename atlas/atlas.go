package atlas

import (
	"fmt"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/dataset"
)

// Atlas is the immutable graph model: the border graph plus the code and
// capital-distance tables used to weigh its edges.
type Atlas struct {
	tables *dataset.Tables
	graph  *core.Graph
}

// New builds an Atlas over t. Self-adjacency is kept when the borders
// source lists it; repeated neighbor entries collapse into one edge.
// t must not be mutated afterwards.
func New(t *dataset.Tables, opts ...Option) (*Atlas, error) {
	if t == nil {
		return nil, ErrNilTables
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := core.FromAdjacency(t.Borders, core.WithLoops())
	if err != nil {
		return nil, fmt.Errorf("atlas: building border graph: %w", err)
	}

	o.Logger.Debug("built border graph",
		"countries", g.VertexCount(),
		"borders", g.EdgeCount(),
		"codes", len(t.Codes),
	)

	return &Atlas{tables: t, graph: g}, nil
}

// Resolve returns the capital distance between a and b.
//
// Both names must be declaring countries, otherwise the status is
// UnknownCountry. Adjacency between a and b is not required, except that a
// country resolves against itself only when it lists itself as a neighbor.
// A missing code or an unrecorded pair yields UnknownDistance.
func (a *Atlas) Resolve(from, to string) Resolution {
	if !a.graph.HasVertex(from) || !a.graph.HasVertex(to) {
		return Resolution{Status: UnknownCountry}
	}
	if from == to && !a.graph.HasEdge(from, to) {
		return Resolution{Status: UnknownDistance}
	}

	codeA, okA := a.tables.Codes[from]
	codeB, okB := a.tables.Codes[to]
	if !okA || !okB {
		return Resolution{Status: UnknownDistance}
	}

	km, ok := a.tables.Distances.Lookup(codeA, codeB)
	if !ok {
		return Resolution{Status: UnknownDistance}
	}

	return Resolution{Status: Resolved, Km: km}
}

// Distance is Resolve collapsed to the legacy integer form: the distance in
// km, or Unknown for either failure kind.
func (a *Atlas) Distance(from, to string) int {
	return a.Resolve(from, to).Int()
}

// Weight adapts Resolve to a shortest-path weight function. ok is false
// whenever the distance is not resolved.
func (a *Atlas) Weight(from, to string) (int64, bool) {
	r := a.Resolve(from, to)
	if !r.Known() {
		return 0, false
	}
	return int64(r.Km), true
}

// Has reports whether name is a declaring country.
func (a *Atlas) Has(name string) bool { return a.graph.HasVertex(name) }

// Countries returns the declaring countries, sorted.
func (a *Atlas) Countries() []string { return a.graph.Vertices() }

// Neighbors returns the neighbors name declares, in declared order.
// Returns core.ErrVertexNotFound for an unknown country.
func (a *Atlas) Neighbors(name string) ([]string, error) {
	return a.graph.Neighbors(name)
}

// Code returns the country code of name at the loaded snapshot.
func (a *Atlas) Code(name string) (dataset.CountryCode, bool) {
	c, ok := a.tables.Codes[name]
	return c, ok
}

// Graph returns the border graph. It is read-only.
func (a *Atlas) Graph() *core.Graph { return a.graph }

// Tables returns the tables the Atlas was built from. Callers must not
// mutate them.
func (a *Atlas) Tables() *dataset.Tables { return a.tables }
