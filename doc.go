// Package roadtrip finds the shortest road trip between two countries when
// every border crossing is weighed by the distance between the two capitals.
//
// A Trip is built once from three sources:
//
//	borders.txt     which countries border which (directed as declared)
//	capdist.csv     capital-to-capital distances keyed by country code
//	state_name.tsv  country name → code, at the latest snapshot date
//
// and then answers read-only queries:
//
//   - GetDistance(a, b): capital distance in km, or -1 when either country is
//     unknown or no distance is recorded.
//   - Route(a, b): the hops of the minimum total distance path over border
//     crossings with known distances.
//   - FindPath(a, b): the same path rendered as "A --> B (N km.)" lines.
//   - Connected(a, b): whether any border chain links a to b, ignoring
//     distances.
//
// Borders whose capital distance cannot be resolved are never used for
// routing; they are not treated as free.
//
// Usage
//
//	trip, err := roadtrip.New(ctx, dataset.Sources{
//	    Borders:         "borders.txt",
//	    CapitalDistance: "capdist.csv",
//	    StateNames:      "state_name.tsv",
//	})
//	if err != nil {
//	    return err
//	}
//	for _, line := range trip.FindPath("Spain", "Germany") {
//	    fmt.Println("*", line)
//	}
//
// A Trip is immutable and safe for concurrent use.
//
// Subpackages:
//
//	dataset/   parsing and loading of the three sources
//	core/      immutable directed border graph
//	atlas/     graph model and capital-distance resolver
//	dijkstra/  shortest path with on-demand edge weights
//	bfs/       unweighted reachability over borders
//	cmd/iroadtrip  interactive command-line front end
package roadtrip
