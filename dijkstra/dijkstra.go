package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes shortest distances from Options.Source over g, resolving
// each edge weight through Options.Weight at relaxation time.
//
// Returns:
//
//   - dist: vertex ID → best known distance (math.MaxInt64 if not reached).
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means the best path to v arrives from u; "" for the
//     source and for vertices never reached.
//   - err:  a sentinel error for invalid input or a negative weight.
//
// Preconditions, checked in order:
//  1. Source is non-empty (ErrEmptySource).
//  2. g is non-nil (ErrNilGraph).
//  3. a weight function is set (ErrNoWeightFunc).
//  4. g contains Source (ErrVertexNotFound).
//
// Edges whose weight is unknown, and edges into IDs that are not vertices of
// g, are never relaxed. With a Target the loop stops once the Target is
// popped, so only dist[Target] is guaranteed final.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Weight == nil {
		return nil, nil, ErrNoWeightFunc
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo walks prev from target back to source and returns the vertex
// sequence source → … → target. It returns nil when target has no
// predecessor chain leading to source. PathTo(prev, s, s) is []string{s}.
func PathTo(prev map[string]string, source, target string) []string {
	if source == "" || target == "" {
		return nil
	}
	path := []string{target}
	seen := map[string]bool{target: true}
	for cur := target; cur != source; {
		p := prev[cur]
		if p == "" || seen[p] {
			return nil
		}
		seen[p] = true
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph             // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, Target, Weight, ...).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the best path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to +∞, the source to 0, and seeds the heap.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops vertices in order of distance until the heap is empty, the
// target is settled, or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry: u was already settled with a smaller distance.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if u == r.options.Target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax resolves each outgoing edge of u and improves neighbor distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.dist[u]
	for _, v := range neighbors {
		if !r.g.HasVertex(v) || r.visited[v] {
			continue
		}

		w, ok := r.options.Weight(u, v)
		if !ok {
			continue // unknown weight: edge unusable
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold || w > math.MaxInt64-du {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, so ties keep the first predecessor found.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Improvements push a new
// item; the outdated one is skipped when popped (checked via visited).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
