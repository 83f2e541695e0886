package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Column positions in the state-name source:
// statenumber	stateid	countryname	start	end
const (
	stateCode    = 1
	stateName    = 2
	stateDate    = 4
	stateMinCols = stateDate + 1
)

const snapshotLayout = "2006-01-02"

type stateRow struct {
	code CountryCode
	name CanonicalName
	date time.Time
}

// ParseStateNames reads the tab-separated state-name source and returns the
// name-to-code table for a single snapshot, together with that snapshot date.
//
// With an empty snapshot the latest date present in the source is used. Rows
// with too few columns or an unparseable date never match. When a name occurs
// twice under the chosen date, the later row wins.
func ParseStateNames(r io.Reader, snapshot string) (CodeTable, string, error) {
	var want time.Time
	if snapshot != "" {
		t, err := time.Parse(snapshotLayout, snapshot)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q", ErrMalformedDate, snapshot)
		}
		want = t
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	var rows []stateRow
	var latest time.Time
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < stateMinCols {
			continue
		}
		date, err := time.Parse(snapshotLayout, strings.TrimSpace(fields[stateDate]))
		if err != nil {
			continue
		}
		if date.After(latest) {
			latest = date
		}
		rows = append(rows, stateRow{
			code: strings.TrimSpace(fields[stateCode]),
			name: Normalize(fields[stateName]),
			date: date,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	if want.IsZero() {
		want = latest
	}

	codes := make(CodeTable)
	if want.IsZero() {
		return codes, "", nil
	}
	for _, row := range rows {
		if row.date.Equal(want) && row.name != "" {
			codes[row.name] = row.code
		}
	}

	return codes, want.Format(snapshotLayout), nil
}
