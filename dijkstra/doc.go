// Package dijkstra implements Dijkstra's single-source shortest-path search
// over a read-only graph whose edge weights are resolved on demand.
//
// Overview:
//
//   - Weights are not stored on edges. A WeightFunc is called for each edge
//     at relaxation time and may answer "unknown" (ok == false); such edges
//     are skipped, never treated as free or as infinite arithmetic.
//   - Lazy decrease-key: an improved distance pushes a new heap entry and the
//     stale one is ignored when popped.
//   - Target enables early termination once the target vertex is settled.
//   - PathTo rebuilds the vertex sequence from the predecessor map.
//
// Complexity:
//
//   - Time:  O((V + E) log V), plus one WeightFunc call per relaxed edge.
//   - Space: O(V + E) for distance/predecessor maps and the heap.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g,
//	    dijkstra.Source("Alpha"),
//	    dijkstra.Target("Gamma"),
//	    dijkstra.WithWeightFunc(atlas.Weight),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    return err
//	}
//	path := dijkstra.PathTo(prev, "Alpha", "Gamma")
//	fmt.Println(path, dist["Gamma"])
//
// Thread safety:
//
// Each call owns its state. Concurrent calls are safe as long as g and the
// WeightFunc are safe for concurrent reads.
package dijkstra
