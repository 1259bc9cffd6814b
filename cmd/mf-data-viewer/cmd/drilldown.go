package cmd

import (
	"github.com/spf13/cobra"
)

var (
	drilldownPeriod string
	drilldownFrom   string
	drilldownTo     string
	drilldownMajors []string
)

// drilldownCmd prints the minor-category expense breakdown, scoped to
// the selected major categories.
var drilldownCmd = &cobra.Command{
	Use:   "drilldown",
	Short: "Minor-category expense breakdown for selected major categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseFilter(drilldownPeriod, drilldownFrom, drilldownTo)
		if err != nil {
			return err
		}
		breakdown, err := dashboard.Drilldown(cmd.Context(), f, drilldownMajors)
		if err != nil {
			return err
		}
		return printJSON(breakdown)
	},
}

func init() {
	addFilterFlags(drilldownCmd, &drilldownPeriod, &drilldownFrom, &drilldownTo)
	drilldownCmd.Flags().StringArrayVar(&drilldownMajors, "major", nil, "major category to drill into (repeatable; none means all)")
}
