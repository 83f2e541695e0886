// Package core provides the immutable directed Graph that roadtrip searches.
//
// A Graph is built once from a declarant → neighbors table:
//
//	adj := map[string][]string{
//	    "Alpha": {"Beta", "Gamma"},
//	    "Beta":  {"Alpha"},
//	}
//	g, err := core.FromAdjacency(adj, core.WithLoops())
//
// Properties:
//
//   - Directed as declared: "Alpha" → "Beta" exists because Alpha lists Beta;
//     the reverse edge exists only if Beta lists Alpha.
//   - Vertices are declarants only. A neighbor that never declares its own
//     borders is reachable as an edge target but HasVertex reports false.
//   - Deterministic: Vertices() is sorted, Neighbors() keeps declared order,
//     edge IDs ("e1", "e2", ...) are assigned in sorted-vertex order.
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges) are dropped
//     unless requested.
//
// Thread safety:
//
// There is no mutation API after FromAdjacency returns, so a *Graph can be
// shared by any number of goroutines without synchronization.
//
// Complexity:
//
//	FromAdjacency  O(V log V + E)
//	HasVertex      O(1)
//	HasEdge        O(deg)
//	Neighbors      O(deg)
//	Vertices       O(V)
package core
