package cmd

import (
	"github.com/spf13/cobra"
)

var (
	summaryPeriod string
	summaryFrom   string
	summaryTo     string
	summaryForce  bool
)

// summaryCmd prints totals, the expense category breakdown and the
// time series for the selected filter.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Totals, category breakdown and time series for a filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseFilter(summaryPeriod, summaryFrom, summaryTo)
		if err != nil {
			return err
		}
		ov, err := dashboard.Overview(cmd.Context(), summaryForce, f)
		if err != nil {
			return err
		}
		return printJSON(ov)
	},
}

func init() {
	addFilterFlags(summaryCmd, &summaryPeriod, &summaryFrom, &summaryTo)
	summaryCmd.Flags().BoolVar(&summaryForce, "force", false, "rebuild the ledger before summarizing")
}
