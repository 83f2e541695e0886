package atlas_test

import (
	"fmt"

	"github.com/katalvlaran/roadtrip/atlas"
	"github.com/katalvlaran/roadtrip/dataset"
)

func ExampleAtlas_Resolve() {
	a, err := atlas.New(&dataset.Tables{
		Borders: dataset.AdjacencyTable{
			"Spain":    {"Portugal", "France"},
			"Portugal": {"Spain"},
			"France":   {"Spain"},
		},
		Codes: dataset.CodeTable{"Spain": "SPN", "Portugal": "POR"},
		Distances: dataset.DistanceTable{
			{A: "SPN", B: "POR"}: 503,
			{A: "POR", B: "SPN"}: 503,
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r := a.Resolve("Portugal", "Spain")
	fmt.Println(r.Status, r.Km)
	fmt.Println(a.Resolve("Spain", "France").Status)
	fmt.Println(a.Resolve("Spain", "Atlantis").Status)
	fmt.Println(a.Distance("Spain", "Atlantis"))
	// Output:
	// resolved 503
	// unknown distance
	// unknown country
	// -1
}
