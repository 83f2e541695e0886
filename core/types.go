// Package core defines the immutable border Graph, its Edge type, build
// options and sentinel errors.
//
// Errors:
//
//	ErrEmptyVertexID  - a vertex or neighbor ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a declarant or neighbor ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is a directed border edge From → To as declared by From.
//
// To need not be a vertex of the graph: a country may list a neighbor that
// never declares its own borders.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the declaring vertex ID.
	From string

	// To is the neighbor as listed by From.
	To string
}

// GraphOption configures a Graph before it is built.
type GraphOption func(g *Graph)

// WithLoops keeps self-adjacency (a country listing itself as a neighbor).
// Without it such entries are dropped.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges keeps repeated neighbor entries as parallel edges.
// Without it only the first occurrence of each neighbor is kept.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a read-only directed graph over canonical country names.
//
// Vertices are the declaring countries; adjacency keeps the declared order
// of neighbors. A Graph is fully built by FromAdjacency and exposes no
// mutation, so it is safe for concurrent readers without locking.
type Graph struct {
	// Configuration flags
	allowLoops bool // keep self-loops
	allowMulti bool // keep parallel edges

	// Storage
	nextEdgeID uint64
	vertices   map[string]struct{}
	order      []string           // sorted vertex IDs
	adjacency  map[string][]*Edge // from → edges in declared order
	edgeCount  int
}
