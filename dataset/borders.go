package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseBorders reads the borders source, one declaration per line:
//
//	Name (qualifier) = Neighbor1 123 km; Neighbor2 (q) 45 km
//
// The declarant and every neighbor are normalized and the numeric annotations
// are discarded. A line without '=' or with nothing after it declares a
// country with no neighbors. Neighbors are kept in source order, duplicates
// included; adjacency is never mirrored.
func ParseBorders(r io.Reader) (AdjacencyTable, error) {
	adj := make(AdjacencyTable)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		decl, list, _ := strings.Cut(line, "=")
		country := Normalize(decl)
		if country == "" {
			continue
		}

		neighbors := make([]CanonicalName, 0, strings.Count(list, ";")+1)
		for _, entry := range strings.Split(list, ";") {
			name := Normalize(stripAnnotation(entry))
			if name == "" {
				continue
			}
			neighbors = append(neighbors, name)
		}
		adj[country] = neighbors
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	return adj, nil
}
