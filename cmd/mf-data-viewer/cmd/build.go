package cmd

import (
	"github.com/spf13/cobra"
)

var buildForce bool

// buildCmd regenerates or validates the canonical ledger.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build or reuse the canonical consolidated ledger",
	Long: `Build merges every source CSV into the canonical ledger file.

Without --force the cached ledger is reused when it exists and still
carries the period_tag schema column; otherwise it is regenerated
from the source directory. Skipped source files are reported as
warnings, never as failures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := dashboard.Build(cmd.Context(), buildForce)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{
			"rows":     len(res.Ledger.Rows),
			"rebuilt":  res.Rebuilt,
			"run_id":   res.RunID,
			"warnings": res.Warnings,
		})
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildForce, "force", false, "regenerate even when a valid cached ledger exists")
}
