package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/dijkstra"
)

// ExampleDijkstra prefers two short legs over one long direct leg.
func ExampleDijkstra() {
	g, err := core.FromAdjacency(map[string][]string{
		"Alpha": {"Beta", "Gamma"},
		"Beta":  {"Alpha", "Gamma"},
		"Gamma": {"Alpha", "Beta"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	km := map[[2]string]int64{
		{"Alpha", "Beta"}:  500,
		{"Beta", "Gamma"}:  100,
		{"Alpha", "Gamma"}: 900,
	}
	weight := func(from, to string) (int64, bool) {
		if w, ok := km[[2]string{from, to}]; ok {
			return w, true
		}
		w, ok := km[[2]string{to, from}]
		return w, ok
	}

	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source("Alpha"),
		dijkstra.Target("Gamma"),
		dijkstra.WithWeightFunc(weight),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dijkstra.PathTo(prev, "Alpha", "Gamma"), dist["Gamma"])
	// Output:
	// [Alpha Beta Gamma] 600
}
