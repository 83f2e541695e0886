package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/roadtrip"
	"github.com/katalvlaran/roadtrip/dataset"
)

const (
	exitWord      = "EXIT"
	invalidPrompt = "Invalid country name. Please enter a valid country name."
)

// repl reads country pairs and prints the route between them.
type repl struct {
	trip    *roadtrip.Trip
	scanner *bufio.Scanner
	out     io.Writer
	styles  styles
}

func newREPL(trip *roadtrip.Trip, in io.Reader, out io.Writer, st styles) *repl {
	return &repl{
		trip:    trip,
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  st,
	}
}

// run loops until EXIT or end of input.
func (r *repl) run() error {
	for {
		from, ok, err := r.ask("first")
		if err != nil || !ok {
			return err
		}
		if from == "" {
			continue
		}

		to, ok, err := r.ask("second")
		if err != nil || !ok {
			return err
		}
		if to == "" {
			continue
		}

		r.printRoute(from, to)
	}
}

// ask prompts for one country. ok is false on EXIT or end of input; an
// unrecognized name is reported and returned as "".
func (r *repl) ask(which string) (name string, ok bool, err error) {
	fmt.Fprint(r.out, r.styles.prompt.Render(
		fmt.Sprintf("Enter the name of the %s country (type %s to quit):", which, exitWord)), " ")

	if !r.scanner.Scan() {
		fmt.Fprintln(r.out)
		return "", false, r.scanner.Err()
	}
	line := strings.TrimSpace(r.scanner.Text())
	if strings.EqualFold(line, exitWord) {
		return "", false, nil
	}

	name = dataset.Normalize(line)
	if !r.trip.Atlas().Has(name) {
		fmt.Fprintln(r.out, r.styles.err.Render(invalidPrompt))
		return "", true, nil
	}
	return name, true, nil
}

func (r *repl) printRoute(from, to string) {
	steps := r.trip.FindPath(from, to)
	if len(steps) == 0 {
		fmt.Fprintln(r.out, r.styles.err.Render(fmt.Sprintf("No valid path exists between %s and %s", from, to)))
		if from != to && r.trip.Connected(from, to) {
			fmt.Fprintln(r.out, r.styles.muted.Render("(a border chain exists, but capital distances along it are unknown)"))
		}
		return
	}

	fmt.Fprintln(r.out, r.styles.title.Render(fmt.Sprintf("Route from %s to %s:", from, to)))
	for _, step := range steps {
		fmt.Fprintln(r.out, r.styles.step.Render("* "+step))
	}
}
