package commands

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-outlier/frame"
	"github.com/cwbudde/algo-outlier/internal/cli/config"
	"github.com/cwbudde/algo-outlier/stats/outlier"
)

type fenceRecord struct {
	Column  string  `json:"column"`
	Q1      float64 `json:"q1"`
	Q3      float64 `json:"q3"`
	IQR     float64 `json:"iqr"`
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	Mild    int     `json:"mild"`
	Extreme int     `json:"extreme"`
}

// NewFencesCommand creates the fences command.
func NewFencesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fences [file]",
		Short: "Show quartiles, Tukey fences and outlier counts per column",
		Long: `Compute Q1, Q3, IQR and the [lower, upper] fence for each selected
numeric column without modifying the data. Mild outliers fall outside
the k*IQR fence, extreme ones outside the 2k*IQR fence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			_, cols, err := prepare(cmd.InOrStdin(), args, cfg, config.Logger(cmd.Context()))
			if err != nil {
				return err
			}

			records, err := fenceRecords(cols, cfg)
			if err != nil {
				return err
			}

			r := report{
				header:  []string{"Column", "Q1", "Q3", "IQR", "Lower", "Upper", "Mild", "Extreme"},
				records: records,
			}
			for _, rec := range records {
				r.rows = append(r.rows, []string{
					rec.Column,
					frame.FormatValue(rec.Q1),
					frame.FormatValue(rec.Q3),
					frame.FormatValue(rec.IQR),
					frame.FormatValue(rec.Lower),
					frame.FormatValue(rec.Upper),
					itoa(rec.Mild),
					itoa(rec.Extreme),
				})
			}
			return render(cmd.OutOrStdout(), cfg.Output, r)
		},
	}
}

func fenceRecords(cols []*frame.Column, cfg *config.Config) ([]fenceRecord, error) {
	records := make([]fenceRecord, 0, len(cols))
	for _, c := range cols {
		q1, q3, err := outlier.Quartiles(c.Values)
		if err != nil {
			return nil, columnError(c.Name, err)
		}
		res, err := outlier.Classify(c.Values, cfg.Options()...)
		if err != nil {
			return nil, columnError(c.Name, err)
		}
		records = append(records, fenceRecord{
			Column:  c.Name,
			Q1:      q1,
			Q3:      q3,
			IQR:     q3 - q1,
			Lower:   res.Inner.Lower,
			Upper:   res.Inner.Upper,
			Mild:    len(res.Mild),
			Extreme: len(res.Extreme),
		})
	}
	return records, nil
}
