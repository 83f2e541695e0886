package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// FromAdjacency builds a Graph from a declarant → neighbors table.
//
// Every key becomes a vertex; every listed neighbor becomes a directed edge
// key → neighbor. Neighbors are never added as vertices and edges are never
// mirrored. Self-loops and repeated neighbors are kept only when WithLoops
// and WithMultiEdges are given.
//
// Returns ErrEmptyVertexID if any key or neighbor is empty.
// Complexity: O(V log V + E).
func FromAdjacency(adj map[string][]string, opts ...GraphOption) (*Graph, error) {
	g := &Graph{
		vertices:  make(map[string]struct{}, len(adj)),
		adjacency: make(map[string][]*Edge, len(adj)),
	}
	for _, opt := range opts {
		opt(g)
	}

	for id := range adj {
		if err := g.addVertex(id); err != nil {
			return nil, err
		}
	}
	sort.Strings(g.order)

	// Walk vertices in sorted order so edge IDs are deterministic.
	for _, from := range g.order {
		for _, to := range adj[from] {
			if err := g.addEdge(from, to); err != nil {
				return nil, fmt.Errorf("core: neighbor of %q: %w", from, err)
			}
		}
	}

	return g, nil
}

func (g *Graph) addVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)
	return nil
}

func (g *Graph) addEdge(from, to string) error {
	if to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return nil
	}
	if !g.allowMulti && g.HasEdge(from, to) {
		return nil
	}

	g.nextEdgeID++
	e := &Edge{ID: fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID), From: from, To: to}
	g.adjacency[from] = append(g.adjacency[from], e)
	g.edgeCount++
	return nil
}

// HasVertex reports whether id is a declaring country.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.vertices[id]
	return ok
}

// HasEdge reports whether from lists to as a neighbor.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}
	return false
}

// Neighbors returns the neighbor IDs of id in declared order.
// The returned slice is a copy.
// Returns ErrVertexNotFound if id is not a vertex.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	edges := g.adjacency[id]
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out, nil
}

// Edges returns the outgoing edges of id in declared order.
// Returns ErrVertexNotFound if id is not a vertex.
func (g *Graph) Edges(id string) ([]Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	edges := g.adjacency[id]
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = *e
	}
	return out, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// VertexCount returns the number of declaring countries.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of stored border edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Looped reports whether self-loops were kept.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges were kept.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// AdjacencyList returns a copy of the adjacency as vertex → neighbor IDs.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		nbrs, _ := g.Neighbors(id)
		out[id] = nbrs
	}
	return out
}
