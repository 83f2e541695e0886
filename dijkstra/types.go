// This file declares the graph contract, configuration options and
// sentinel errors for the shortest-path search.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– Target:           optional vertex ID; the search stops once it is settled.
//	– WithWeightFunc:   resolves the weight of each edge on demand (required).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNoWeightFunc    if no weight function was supplied.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if the weight function yields a negative weight.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoWeightFunc indicates that Dijkstra was called without WithWeightFunc.
	ErrNoWeightFunc = errors.New("dijkstra: weight function is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was resolved.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only view Dijkstra needs. *core.Graph satisfies it.
type Graph interface {
	HasVertex(id string) bool
	Neighbors(id string) ([]string, error)
	Vertices() []string
}

// WeightFunc resolves the weight of the edge from → to.
//
// ok == false means the weight is unknown: the edge is skipped entirely,
// it is never relaxed as zero or as an "infinite" number.
type WeightFunc func(from, to string) (w int64, ok bool)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string     // The ID of the source vertex
	Target           string     // Optional vertex at which to stop
	Weight           WeightFunc // Per-edge weight resolver
	ReturnPath       bool       // Whether to return the predecessor map
	MaxDistance      int64      // Maximum distance to explore
	InfEdgeThreshold int64      // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target stops the search as soon as id is popped from the frontier.
// Distances to vertices not yet settled at that point are not final.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithWeightFunc sets the per-edge weight resolver. Required.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		o.Weight = fn
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold skips every edge whose weight is ≥ threshold.
// Panics with ErrBadInfThreshold on a non-positive value.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no target,
// no weight function, no distance cap and no impassable threshold.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
