package cmd

import (
	"github.com/spf13/cobra"
)

var (
	seriesPeriod string
	seriesFrom   string
	seriesTo     string
)

// seriesCmd prints the income/expense time series. Bucket granularity
// follows the selected span: day up to 90 days, month up to two
// years, year beyond that.
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Income/expense time series for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseFilter(seriesPeriod, seriesFrom, seriesTo)
		if err != nil {
			return err
		}
		ov, err := dashboard.Overview(cmd.Context(), false, f)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{
			"granularity": ov.Granularity,
			"series":      ov.Series,
		})
	},
}

func init() {
	addFilterFlags(seriesCmd, &seriesPeriod, &seriesFrom, &seriesTo)
}
