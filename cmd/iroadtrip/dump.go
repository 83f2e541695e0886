package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadtrip/dataset"
)

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [borders.txt capdist.csv state_name.tsv]",
		Short: "Print the loaded borders, country codes and capital distances",
		Args:  sourceArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := a.loadTrip(cmd.Context(), args)
			if err != nil {
				return err
			}
			return dumpTables(a.out, a.styles, trip.Atlas().Tables())
		},
	}
}

// dumpTables writes the three tables, each sorted by key.
func dumpTables(w io.Writer, st styles, t *dataset.Tables) error {
	var b strings.Builder

	b.WriteString(st.title.Render("Country Borders:") + "\n")
	for _, name := range t.Countries() {
		fmt.Fprintf(&b, "%s borders: [%s]\n", name, strings.Join(t.Borders[name], ", "))
	}

	b.WriteString("\n" + st.title.Render("Country Abbreviations:") + "\n")
	names := make([]string, 0, len(t.Codes))
	for name := range t.Codes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "%s abbreviation: %s\n", name, t.Codes[name])
	}

	b.WriteString("\n" + st.title.Render("Capital Distances:") + "\n")
	pairs := make([]dataset.CodePair, 0, len(t.Distances))
	for p := range t.Distances {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].String() < pairs[j].String() })
	for _, p := range pairs {
		fmt.Fprintf(&b, "%s distance: %d\n", p, t.Distances[p])
	}

	_, err := io.WriteString(w, b.String())
	return err
}
