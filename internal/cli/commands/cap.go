package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-outlier/frame"
	"github.com/cwbudde/algo-outlier/internal/cli/config"
)

// NewCapCommand creates the cap command.
func NewCapCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "cap [file]",
		Short: "Winsorize numeric columns and write the table back as CSV",
		Long: `Read a CSV table (file or stdin), clamp each selected numeric column
into its Tukey fence and write the full table, text columns included,
to stdout or --out.

Bounds are computed per column from the column itself.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			logger := config.Logger(cmd.Context())

			f, cols, err := prepare(cmd.InOrStdin(), args, cfg, logger)
			if err != nil {
				return err
			}
			logger.Debug("loaded table", "rows", f.Len(), "numeric_columns", len(f.Columns), "selected", len(cols))

			names := make([]string, len(cols))
			for i, c := range cols {
				names[i] = c.Name
			}
			reports, err := frame.CapColumns(cmd.Context(), f, names, cfg.Options()...)
			if err != nil {
				return err
			}
			for _, r := range reports {
				logger.Info("capped column",
					"column", r.Column,
					"lower", r.Bounds.Lower,
					"upper", r.Bounds.Upper,
					"changed", r.Changed)
			}

			return writeFrame(cmd.OutOrStdout(), outPath, f)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write the capped table to this file instead of stdout")
	return cmd
}

func writeFrame(stdout io.Writer, path string, f *frame.Frame) error {
	if path == "" {
		return frame.WriteCSV(stdout, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := frame.WriteCSV(file, f); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
