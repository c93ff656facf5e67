// Package cli provides the iqrcap command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-outlier/internal/cli/commands"
	"github.com/cwbudde/algo-outlier/internal/cli/config"
	"github.com/cwbudde/algo-outlier/stats/outlier"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "iqrcap",
		Short: "Cap outliers in CSV columns with Tukey fences",
		Long: `iqrcap reads a CSV table and winsorizes its numeric columns into
[Q1 - k*IQR, Q3 + k*IQR] using linearly interpolated quartiles.

Capping never drops rows; --dedupe removes repeated rows before the
quartiles are computed. Missing values must be imputed first, either
upstream or with --fill and --fill-text.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./iqrcap.yaml)")
	pf.Float64("multiplier", outlier.DefaultMultiplier, "Tukey fence multiplier k")
	pf.StringP("output", "o", config.DefaultOutput, "Report format (text|json|csv)")
	pf.String("fill", config.DefaultFill, "Impute missing values before capping (none|mean|zero)")
	pf.String("fill-text", config.DefaultText, "Impute missing text cells before processing (none|mode)")
	pf.Bool("dedupe", false, "Drop duplicate rows before imputing and capping")
	pf.StringSlice("columns", nil, "Numeric columns to process (default: all)")
	pf.BoolP("verbose", "v", false, "Verbose logging")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputJSON, config.OutputCSV}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("fill", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FillNone, config.FillMean, config.FillZero}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("fill-text", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FillTextNone, config.FillTextMode}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewCapCommand())
	rootCmd.AddCommand(commands.NewFencesCommand())
	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
