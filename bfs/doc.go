// Package bfs provides breadth-first search over a read-only border graph,
// returning hop distances, parent links and visit order.
//
// Weights play no part here: BFS answers "is there any border chain from A
// to B, and how many crossings does it take". Callers use it to tell a
// missing border chain apart from a chain whose capital distances are
// unknown.
//
// Behavior
//
//   - Vertices are explored in non-decreasing hop count from the start.
//   - Neighbors are followed in the order the graph returns them, so the
//     visit sequence is reproducible.
//   - A neighbor that is listed but not itself a vertex is never entered.
//   - WithMaxDepth(d) stops at depth d; WithFilterNeighbor prunes edges;
//     WithOnVisit may abort the walk with an error.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Usage
//
//	res, err := bfs.BFS(g, "Spain", bfs.WithMaxDepth(3))
//	if err != nil {
//	    return err
//	}
//	path, err := res.PathTo("Germany")
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNeighbors            if the graph fails to list neighbors.
//   - Wrapped OnVisit errors and context cancellation errors.
package bfs
