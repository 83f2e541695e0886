// Package dataset parses the three reference sources behind roadtrip and
// normalizes their country identifiers into one key space.
//
// Sources:
//
//   - borders.txt: "Name (qualifier) = Neighbor1 123 km; Neighbor2 45 km".
//     Parsed into an AdjacencyTable keyed by canonical name. Distance
//     annotations are discarded; adjacency stays directed as declared.
//   - capdist.csv: header, then "numa,ida,numb,idb,kmdist,midist" rows.
//     Parsed into a DistanceTable keyed by code pair, stored symmetrically.
//   - state_name.tsv: header, then "statenumber\tstateid\tcountryname\tstart\tend"
//     rows. Only rows at the latest end date are kept in the CodeTable.
//
// Canonical names:
//
// Normalize drops everything from the first '(' and trims whitespace, so
// "Korea, South (Republic of Korea)" and "Korea, South" join on the same key.
// Normalize is idempotent.
//
// Errors:
//
// Load aborts on the first unreadable source or malformed distance and
// returns a *SourceError; callers match the cause with errors.Is against
// ErrSourceUnreadable, ErrMalformedRow or ErrMalformedDistance.
//
// Example:
//
//	tables, err := dataset.Load(ctx, dataset.Sources{
//	    Borders:         "borders.txt",
//	    CapitalDistance: "capdist.csv",
//	    StateNames:      "state_name.tsv",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tables.Borders["France"])
package dataset
