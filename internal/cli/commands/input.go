package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-outlier/frame"
	"github.com/cwbudde/algo-outlier/internal/cli/config"
)

// readFrame reads a CSV table from the file named in args, or from in when
// args is empty or "-".
func readFrame(in io.Reader, args []string) (*frame.Frame, error) {
	if len(args) == 0 || args[0] == "-" {
		f, err := frame.ReadCSV(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return f, nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	f, err := frame.ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return f, nil
}

// selectColumns resolves the configured column list against f.
func selectColumns(f *frame.Frame, cfg *config.Config) ([]*frame.Column, error) {
	names := cfg.Columns
	if len(names) == 0 {
		names = f.Names()
	}
	cols := make([]*frame.Column, 0, len(names))
	for _, name := range names {
		c, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", frame.ErrUnknownColumn, name)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

// impute applies the configured fill strategies: numeric ones to cols and
// the text one to every text column of f.
func impute(f *frame.Frame, cols []*frame.Column, cfg *config.Config) error {
	for _, c := range cols {
		switch cfg.Fill {
		case config.FillMean:
			if err := frame.FillMean(c); err != nil {
				return err
			}
		case config.FillZero:
			frame.FillValue(c, 0)
		}
	}
	if cfg.FillText == config.FillTextMode {
		for i := range f.Text {
			if f.Text[i].Missing() == 0 {
				continue
			}
			if err := frame.FillMode(&f.Text[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// prepare reads the input, drops duplicate rows when configured, selects the
// configured columns and imputes them.
func prepare(in io.Reader, args []string, cfg *config.Config, logger *slog.Logger) (*frame.Frame, []*frame.Column, error) {
	f, err := readFrame(in, args)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Dedupe {
		if n := frame.DropDuplicates(f); n > 0 {
			logger.Info("dropped duplicate rows", "rows", n, "remaining", f.Len())
		}
	}
	cols, err := selectColumns(f, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := impute(f, cols, cfg); err != nil {
		return nil, nil, err
	}
	return f, cols, nil
}
