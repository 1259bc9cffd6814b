// Package cmd provides the mf-data-viewer CLI commands.
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/clshinji/mf-data-viewer/internal/config"
	"github.com/clshinji/mf-data-viewer/internal/core"
	"github.com/clshinji/mf-data-viewer/internal/ledger"
	"github.com/clshinji/mf-data-viewer/internal/log"
	"github.com/clshinji/mf-data-viewer/internal/services"
)

var (
	cfgFile string
	debug   bool

	logger    *log.Logger
	dashboard *services.DashboardService
)

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "mf-data-viewer",
	Short: "Consolidate MoneyForward CSV exports and view aggregations",
	Long: `mf-data-viewer merges periodically downloaded MoneyForward CSV
exports into one canonical ledger and computes filtered aggregations:
income/expense totals, category breakdowns, drilldowns and time series.

Views are printed as JSON so any presentation layer can render them.

Example:
  mf-data-viewer build --force
  mf-data-viewer summary --from 2024-01-01 --to 2024-03-31
  mf-data-viewer drilldown --major 食費`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := log.ParseLevel(cfg.LogLevel)
		if debug {
			level = slog.LevelDebug
		}
		logger = log.New(level)
		log.SetDefault(logger)

		builder := ledger.NewBuilder(cfg.SourceDir, cfg.LedgerPath, logger)
		dashboard = services.NewDashboardService(builder, logger)
		return nil
	},
}

// Execute runs the root command. Called once from main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "env file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(drilldownCmd)
	rootCmd.AddCommand(seriesCmd)
}

// addFilterFlags registers the user filter flags shared by the view
// commands.
func addFilterFlags(c *cobra.Command, period, from, to *string) {
	c.Flags().StringVar(period, "period", core.PeriodAll, "exact period tag to select, or 'all'")
	c.Flags().StringVar(from, "from", "", "range start (YYYY-MM-DD), requires --to")
	c.Flags().StringVar(to, "to", "", "range end (YYYY-MM-DD), requires --from")
}

// parseFilter builds the conjunctive user filter from flag values.
func parseFilter(period, from, to string) (core.Filter, error) {
	f := core.Filter{Period: period}
	if from == "" && to == "" {
		return f, nil
	}
	if from == "" || to == "" {
		return core.Filter{}, fmt.Errorf("--from and --to must be given together")
	}
	start, err := core.ParseDate(from)
	if err != nil {
		return core.Filter{}, fmt.Errorf("invalid --from %q: %w", from, err)
	}
	end, err := core.ParseDate(to)
	if err != nil {
		return core.Filter{}, fmt.Errorf("invalid --to %q: %w", to, err)
	}
	r, err := core.NewDateRange(start, end)
	if err != nil {
		return core.Filter{}, err
	}
	f.Range = &r
	return f, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
