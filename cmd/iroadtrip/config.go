package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/roadtrip/dataset"
)

// Config keys, shared by the config file and the persistent flags.
const (
	keyBorders      = "borders"
	keyCapdist      = "capdist"
	keyStateNames   = "state_names"
	keySnapshotDate = "snapshot_date"
)

var errMissingSources = errors.New("missing source paths")

// config is the resolved run configuration.
type config struct {
	Sources      dataset.Sources
	SnapshotDate string
	Verbose      bool
}

// bindSourceFlags registers the source flags on cmd and binds them to v.
func bindSourceFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String("borders", "", "path to borders.txt")
	flags.String("capdist", "", "path to capdist.csv")
	flags.String("state-names", "", "path to state_name.tsv")
	flags.String("snapshot-date", "", "state-name snapshot date (YYYY-MM-DD, default latest)")

	_ = v.BindPFlag(keyBorders, flags.Lookup("borders"))
	_ = v.BindPFlag(keyCapdist, flags.Lookup("capdist"))
	_ = v.BindPFlag(keyStateNames, flags.Lookup("state-names"))
	_ = v.BindPFlag(keySnapshotDate, flags.Lookup("snapshot-date"))
}

// sourceArgs accepts either no positional arguments or exactly the three
// source paths, after skip leading arguments used by the command itself.
func sourceArgs(skip int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		switch len(args) - skip {
		case 0, 3:
			return nil
		default:
			return fmt.Errorf("expected 0 or 3 source paths, got %d", len(args)-skip)
		}
	}
}

// loadConfig merges, from highest to lowest precedence: positional source
// paths, flags, the config file. Environment variables are not consulted.
func loadConfig(v *viper.Viper, cfgFile string, args []string) (config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config %q: %w", cfgFile, err)
		}
	}
	if len(args) == 3 {
		v.Set(keyBorders, args[0])
		v.Set(keyCapdist, args[1])
		v.Set(keyStateNames, args[2])
	}

	cfg := config{
		Sources: dataset.Sources{
			Borders:         v.GetString(keyBorders),
			CapitalDistance: v.GetString(keyCapdist),
			StateNames:      v.GetString(keyStateNames),
		},
		SnapshotDate: v.GetString(keySnapshotDate),
	}

	var missing []string
	if cfg.Sources.Borders == "" {
		missing = append(missing, keyBorders)
	}
	if cfg.Sources.CapitalDistance == "" {
		missing = append(missing, keyCapdist)
	}
	if cfg.Sources.StateNames == "" {
		missing = append(missing, keyStateNames)
	}
	if len(missing) > 0 {
		return config{}, fmt.Errorf("%w: %s", errMissingSources, strings.Join(missing, ", "))
	}

	return cfg, nil
}
