package commands

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-outlier/frame"
	"github.com/cwbudde/algo-outlier/internal/cli/config"
	"github.com/cwbudde/algo-outlier/stats/describe"
)

type summaryRecord struct {
	Column   string  `json:"column"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
	Skewness float64 `json:"skewness"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file]",
		Short: "Print descriptive statistics per numeric column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			_, cols, err := prepare(cmd.InOrStdin(), args, cfg, config.Logger(cmd.Context()))
			if err != nil {
				return err
			}

			r := report{
				header: []string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max", "Skew", "Lower", "Upper"},
			}
			records := make([]summaryRecord, 0, len(cols))
			for _, c := range cols {
				s, err := describe.Calculate(c.Values, cfg.Options()...)
				if err != nil {
					return columnError(c.Name, err)
				}
				rec := summaryRecord{
					Column:   c.Name,
					Count:    s.Count,
					Mean:     s.Mean,
					Std:      s.Std,
					Min:      s.Min,
					Q1:       s.Q1,
					Median:   s.Median,
					Q3:       s.Q3,
					Max:      s.Max,
					Skewness: s.Skewness,
					Lower:    s.Fence.Lower,
					Upper:    s.Fence.Upper,
				}
				records = append(records, rec)
				r.rows = append(r.rows, []string{
					rec.Column,
					itoa(rec.Count),
					formatFixed(rec.Mean),
					formatFixed(rec.Std),
					frame.FormatValue(rec.Min),
					frame.FormatValue(rec.Q1),
					frame.FormatValue(rec.Median),
					frame.FormatValue(rec.Q3),
					frame.FormatValue(rec.Max),
					formatFixed(rec.Skewness),
					frame.FormatValue(rec.Lower),
					frame.FormatValue(rec.Upper),
				})
			}
			r.records = records
			return render(cmd.OutOrStdout(), cfg.Output, r)
		},
	}
}
