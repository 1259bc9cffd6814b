// Package analysis computes derived views over an already-filtered
// transaction slice. Every function is pure: no I/O, no mutation of
// its input, and sums that do not depend on input row order.
package analysis

import (
	"sort"

	"github.com/clshinji/mf-data-viewer/internal/core"
)

// SplitIncomeExpense partitions rows by sign. Expense rows are
// returned with the amount flipped to a positive magnitude, which is
// a view convenience only; the ledger itself keeps signed amounts.
// Zero-amount rows belong to neither side.
func SplitIncomeExpense(txs []core.Transaction) (income, expense []core.Transaction) {
	for _, tx := range txs {
		switch {
		case tx.Amount > 0:
			income = append(income, tx)
		case tx.Amount < 0:
			tx.Amount = -tx.Amount
			expense = append(expense, tx)
		}
	}
	return income, expense
}

// Totals sums both sides of a split. Balance is income minus expense.
func Totals(income, expense []core.Transaction) core.Totals {
	var t core.Totals
	for _, tx := range income {
		t.Income += tx.Amount
	}
	for _, tx := range expense {
		t.Expense += tx.Amount
	}
	t.Balance = t.Income - t.Expense
	return t
}

// CategoryBreakdown sums rows by major category, descending by sum.
// Equal sums keep first-encountered category order (stable sort).
func CategoryBreakdown(rows []core.Transaction) []core.CategoryAmount {
	return sumByCategory(rows, func(tx core.Transaction) string { return tx.Major })
}

// Drilldown sums rows by minor category, scoped to the selected major
// categories. A nil or empty selection means all majors. Sort rule is
// the same as CategoryBreakdown.
func Drilldown(rows []core.Transaction, majors []string) []core.CategoryAmount {
	if len(majors) > 0 {
		selected := make(map[string]bool, len(majors))
		for _, m := range majors {
			selected[m] = true
		}
		scoped := make([]core.Transaction, 0, len(rows))
		for _, tx := range rows {
			if selected[tx.Major] {
				scoped = append(scoped, tx)
			}
		}
		rows = scoped
	}
	return sumByCategory(rows, func(tx core.Transaction) string { return tx.Minor })
}

func sumByCategory(rows []core.Transaction, key func(core.Transaction) string) []core.CategoryAmount {
	sums := make(map[string]int64)
	var order []string
	for _, tx := range rows {
		k := key(tx)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += tx.Amount
	}

	out := make([]core.CategoryAmount, 0, len(order))
	for _, k := range order {
		out = append(out, core.CategoryAmount{Name: k, Amount: sums[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}
