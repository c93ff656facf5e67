package frame

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-outlier/stats/outlier"
)

// ColumnReport describes the capping of one column.
type ColumnReport struct {
	Column  string
	Bounds  outlier.Bounds
	Changed int
}

// CapColumns caps the named numeric columns of f, or every numeric column
// when names is empty. Columns are processed concurrently; f is only
// modified when every column succeeds. Errors from the capper keep
// errors.Is(err, outlier.ErrInvalidInput).
func CapColumns(ctx context.Context, f *Frame, names []string, opts ...outlier.Option) ([]ColumnReport, error) {
	if len(names) == 0 {
		names = f.Names()
	}

	cols := make([]*Column, len(names))
	for i, name := range names {
		c, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		cols[i] = c
	}

	capped := make([][]float64, len(cols))
	reports := make([]ColumnReport, len(cols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range cols {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, b, err := outlier.CapBounds(c.Values, opts...)
			if err != nil {
				return fmt.Errorf("column %q: %w", c.Name, err)
			}
			changed := 0
			for j := range out {
				if out[j] != c.Values[j] {
					changed++
				}
			}
			capped[i] = out
			reports[i] = ColumnReport{Column: c.Name, Bounds: b, Changed: changed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, c := range cols {
		c.Values = capped[i]
	}
	return reports, nil
}
