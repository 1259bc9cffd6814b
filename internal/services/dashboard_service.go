// Package services orchestrates the ledger pipeline behind the
// facade the presentation layer calls. Views come back as plain
// structs of primitives so any renderer (CLI table, chart widget,
// JSON API) can consume them.
package services

import (
	"context"

	"github.com/clshinji/mf-data-viewer/internal/analysis"
	"github.com/clshinji/mf-data-viewer/internal/cache"
	"github.com/clshinji/mf-data-viewer/internal/core"
	"github.com/clshinji/mf-data-viewer/internal/ingest"
	"github.com/clshinji/mf-data-viewer/internal/ledger"
	"github.com/clshinji/mf-data-viewer/internal/log"
)

// ledgerKey is the single memo entry: the business-filtered
// transaction slice, valid until the next rebuild.
const ledgerKey = "ledger"

// DashboardService runs build → filter → aggregate to completion on
// each call. Aggregations are recomputed per filter change by design;
// only the coerced ledger itself is memoized.
type DashboardService struct {
	builder *ledger.Builder
	txCache cache.Cache[[]core.Transaction]
	logger  *log.Logger
}

// Overview is the full dashboard payload for one filter selection.
type Overview struct {
	Totals      core.Totals           `json:"totals"`
	Categories  []core.CategoryAmount `json:"categories"`
	Series      []core.Bucket         `json:"series"`
	Granularity string                `json:"granularity,omitempty"`
	Rows        int                   `json:"rows"`
	Warnings    []ingest.Warning      `json:"warnings,omitempty"`
	RunID       string                `json:"run_id,omitempty"`
}

func NewDashboardService(builder *ledger.Builder, logger *log.Logger) *DashboardService {
	return &DashboardService{
		builder: builder,
		txCache: cache.NewMemo[[]core.Transaction](),
		logger:  logger.WithComponent("dashboard"),
	}
}

// Invalidate drops the memoized ledger so the next call re-reads it.
func (s *DashboardService) Invalidate() {
	s.txCache.Invalidate()
}

// transactions returns the coerced, business-filtered ledger, from
// the memo when possible. force bypasses both the memo and the
// on-disk cache.
func (s *DashboardService) transactions(ctx context.Context, force bool) ([]core.Transaction, []ingest.Warning, string, error) {
	if !force {
		if txs, ok := s.txCache.Get(ledgerKey); ok {
			return txs, nil, "", nil
		}
	}

	res, err := s.builder.BuildOrLoad(ctx, force)
	if err != nil {
		return nil, nil, "", err
	}
	txs := ledger.ApplyBusinessRules(res.Ledger, s.logger)

	s.txCache.Invalidate()
	s.txCache.Set(ledgerKey, txs)
	s.logger.Debug("ledger loaded", "transactions", len(txs), "rebuilt", res.Rebuilt)
	return txs, res.Warnings, res.RunID, nil
}

// Build forces or validates the canonical ledger and reports the run.
func (s *DashboardService) Build(ctx context.Context, force bool) (*ledger.BuildResult, error) {
	res, err := s.builder.BuildOrLoad(ctx, force)
	if err != nil {
		return nil, err
	}
	s.txCache.Invalidate()
	return res, nil
}

// Overview computes totals, the expense category breakdown and the
// time series for the given filter. A reversed date range fails
// validation before any computation.
func (s *DashboardService) Overview(ctx context.Context, force bool, f core.Filter) (*Overview, error) {
	txs, warnings, runID, err := s.transactions(ctx, force)
	if err != nil {
		return nil, err
	}
	filtered, err := f.Apply(txs)
	if err != nil {
		return nil, err
	}

	income, expense := analysis.SplitIncomeExpense(filtered)
	ov := &Overview{
		Totals:     analysis.Totals(income, expense),
		Categories: analysis.CategoryBreakdown(expense),
		Rows:       len(filtered),
		Warnings:   warnings,
		RunID:      runID,
	}

	if start, end, ok := seriesRange(f, filtered); ok {
		ov.Series = analysis.TimeSeries(income, expense, start, end)
		ov.Granularity = analysis.GranularityFor(start, end).String()
	}
	return ov, nil
}

// Drilldown returns the minor-category breakdown of expenses, scoped
// to the selected major categories (none selected means all).
func (s *DashboardService) Drilldown(ctx context.Context, f core.Filter, majors []string) ([]core.CategoryAmount, error) {
	txs, _, _, err := s.transactions(ctx, false)
	if err != nil {
		return nil, err
	}
	filtered, err := f.Apply(txs)
	if err != nil {
		return nil, err
	}
	_, expense := analysis.SplitIncomeExpense(filtered)
	return analysis.Drilldown(expense, majors), nil
}

// seriesRange picks the bucket axis: the user's range when given,
// otherwise the min/max dates present in the filtered rows.
func seriesRange(f core.Filter, rows []core.Transaction) (core.Date, core.Date, bool) {
	if f.Range != nil {
		return f.Range.Start, f.Range.End, true
	}
	if len(rows) == 0 {
		return core.Date{}, core.Date{}, false
	}
	start, end := rows[0].Date, rows[0].Date
	for _, tx := range rows[1:] {
		if tx.Date.Before(start) {
			start = tx.Date
		}
		if tx.Date.After(end) {
			end = tx.Date
		}
	}
	return start, end, true
}
