package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/roadtrip/bfs"
	"github.com/katalvlaran/roadtrip/core"
)

// ExampleBFS finds the fewest border crossings between two countries.
func ExampleBFS() {
	g, err := core.FromAdjacency(map[string][]string{
		"Portugal": {"Spain"},
		"Spain":    {"Portugal", "France", "Andorra"},
		"Andorra":  {"Spain", "France"},
		"France":   {"Spain", "Andorra", "Belgium", "Germany"},
		"Belgium":  {"France", "Germany"},
		"Germany":  {"France", "Belgium"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, "Portugal")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("Germany")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path, res.Depth["Germany"])
	// Output:
	// [Portugal Spain France Germany] 3
}

// ExampleWithMaxDepth limits the walk to two crossings.
func ExampleWithMaxDepth() {
	g, _ := core.FromAdjacency(map[string][]string{
		"v0": {"v1"}, "v1": {"v2"}, "v2": {"v3"}, "v3": {},
	})

	res, _ := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}
