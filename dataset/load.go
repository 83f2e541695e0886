package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Load opens and parses the three sources and returns the fused tables.
//
// The first failure aborts the whole load and is returned as a *SourceError
// naming the failing source; no partially built Tables is ever returned.
// ctx is checked before each source is opened.
func Load(ctx context.Context, src Sources, opts ...Option) (*Tables, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger

	t := &Tables{}

	err := loadSource(ctx, SourceBorders, src.Borders, func(r io.Reader) error {
		adj, err := ParseBorders(r)
		if err != nil {
			return err
		}
		t.Borders = adj
		logger.Debug("loaded borders", "path", src.Borders, "countries", len(adj))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = loadSource(ctx, SourceCapitalDistance, src.CapitalDistance, func(r io.Reader) error {
		dist, err := ParseCapitalDistances(r)
		if err != nil {
			return err
		}
		t.Distances = dist
		logger.Debug("loaded capital distances", "path", src.CapitalDistance, "pairs", len(dist))
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = loadSource(ctx, SourceStateNames, src.StateNames, func(r io.Reader) error {
		codes, snapshot, err := ParseStateNames(r, cfg.SnapshotDate)
		if err != nil {
			return err
		}
		t.Codes = codes
		logger.Debug("loaded state names", "path", src.StateNames, "snapshot", snapshot, "codes", len(codes))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// loadSource opens path and hands it to parse, wrapping any failure in a
// *SourceError for kind.
func loadSource(ctx context.Context, kind SourceKind, path string, parse func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return &SourceError{Source: kind, Path: path, Err: err}
	}

	fi, err := os.Open(path)
	if err != nil {
		return &SourceError{Source: kind, Path: path, Err: fmt.Errorf("%w: %v", ErrSourceUnreadable, err)}
	}
	defer fi.Close()

	if err := parse(fi); err != nil {
		return &SourceError{Source: kind, Path: path, Err: err}
	}
	return nil
}
