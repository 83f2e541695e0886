package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/roadtrip"
	"github.com/katalvlaran/roadtrip/dataset"
)

// app carries the state shared by the root command and its subcommands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	v       *viper.Viper
	cfgFile string
	verbose bool

	logger *log.Logger
	styles styles
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		v:      viper.New(),
		styles: newStyles(out),
	}
	a.logger = log.NewWithOptions(errOut, log.Options{Prefix: "iroadtrip"})

	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	a.logger.Error(err.Error())
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "iroadtrip [borders.txt capdist.csv state_name.tsv]",
		Short: "Find the shortest road trip between two countries",
		Long: `iroadtrip loads the country border list, the capital-to-capital distance
table and the country code table, then repeatedly asks for two countries
and prints the route with the least total capital distance.

Sources may be given as three positional paths, as --borders, --capdist and
--state-names flags, or as the keys borders, capdist and state_names of a
--config file. Type EXIT at any prompt to quit.`,
		Args:          sourceArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := a.loadTrip(cmd.Context(), args)
			if err != nil {
				return err
			}
			return newREPL(trip, a.in, a.out, a.styles).run()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	bindSourceFlags(root, a.v)

	root.AddCommand(a.dumpCmd())
	root.AddCommand(a.distanceCmd())

	return root
}

// loadTrip resolves the configuration and loads the sources. A load failure
// is logged with the failing source and returned as an ExitError.
func (a *app) loadTrip(ctx context.Context, sourcePaths []string) (*roadtrip.Trip, error) {
	cfg, err := loadConfig(a.v, a.cfgFile, sourcePaths)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("loading sources",
		"borders", cfg.Sources.Borders,
		"capdist", cfg.Sources.CapitalDistance,
		"state_names", cfg.Sources.StateNames,
	)
	trip, err := roadtrip.New(ctx, cfg.Sources,
		roadtrip.WithLogger(a.logger),
		roadtrip.WithSnapshotDate(cfg.SnapshotDate),
	)
	if err != nil {
		var srcErr *dataset.SourceError
		if errors.As(err, &srcErr) {
			a.logger.Error("failed to load "+string(srcErr.Source), "path", srcErr.Path, "err", srcErr.Err)
		} else {
			a.logger.Error("failed to load sources", "err", err)
		}
		return nil, &ExitError{Code: 1, Err: err}
	}

	return trip, nil
}

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <country> <country> [borders.txt capdist.csv state_name.tsv]",
		Short: "Print the capital distance between two countries (-1 if unknown)",
		Args:  cobra.MatchAll(cobra.MinimumNArgs(2), sourceArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			trip, err := a.loadTrip(cmd.Context(), args[2:])
			if err != nil {
				return err
			}
			from, to := dataset.Normalize(args[0]), dataset.Normalize(args[1])
			_, err = fmt.Fprintln(a.out, trip.GetDistance(from, to))
			return err
		},
	}
}
