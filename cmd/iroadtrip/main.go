// Command iroadtrip loads the border, capital-distance and state-name
// sources and answers route queries interactively.
//
//	iroadtrip borders.txt capdist.csv state_name.tsv
//	iroadtrip --config roadtrip.yaml
//	iroadtrip dump borders.txt capdist.csv state_name.tsv
//	iroadtrip distance --config roadtrip.yaml Spain France
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
