package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column positions in the capital-distance source:
// numa,ida,numb,idb,kmdist,midist
const (
	capdistCodeA   = 1
	capdistCodeB   = 3
	capdistKm      = 4
	capdistMinCols = capdistKm + 1
)

// ParseCapitalDistances reads the comma-separated capital-distance source.
// The first line is a header. Every row (X, Y, d) is stored under both (X, Y)
// and (Y, X). A distance that is not a non-negative integer aborts the parse.
func ParseCapitalDistances(r io.Reader) (DistanceTable, error) {
	dist := make(DistanceTable)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < capdistMinCols {
			return nil, fmt.Errorf("%w: line %d has %d columns, want at least %d",
				ErrMalformedRow, lineNo, len(fields), capdistMinCols)
		}

		km, err := strconv.Atoi(strings.TrimSpace(fields[capdistKm]))
		if err != nil || km < 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedDistance, lineNo, fields[capdistKm])
		}

		a := strings.TrimSpace(fields[capdistCodeA])
		b := strings.TrimSpace(fields[capdistCodeB])
		dist[CodePair{A: a, B: b}] = km
		dist[CodePair{A: b, B: a}] = km
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	return dist, nil
}
