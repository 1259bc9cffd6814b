package analysis

import (
	"time"

	"github.com/clshinji/mf-data-viewer/internal/core"
)

// Granularity is the time-series bucket size, chosen purely from the
// span of the selected date range.
type Granularity int

const (
	Daily Granularity = iota
	Monthly
	Yearly
)

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	default:
		return "yearly"
	}
}

// GranularityFor classifies a span: up to 90 days buckets by day, up
// to 730 days by month, anything longer by year.
func GranularityFor(start, end core.Date) Granularity {
	days := int(end.Time.Sub(start.Time).Hours() / 24)
	switch {
	case days <= 90:
		return Daily
	case days <= 730:
		return Monthly
	default:
		return Yearly
	}
}

// bucketStart truncates a date to the start of its bucket.
func bucketStart(d core.Date, g Granularity) core.Date {
	switch g {
	case Daily:
		return core.NewDate(d.Year(), d.Month(), d.Day())
	case Monthly:
		return core.NewDate(d.Year(), d.Month(), 1)
	default:
		return core.NewDate(d.Year(), 1, 1)
	}
}

// next returns the start of the bucket after d.
func (g Granularity) next(d core.Date) core.Date {
	switch g {
	case Daily:
		return core.Date{Time: d.Time.AddDate(0, 0, 1)}
	case Monthly:
		return core.Date{Time: d.Time.AddDate(0, 1, 0)}
	default:
		return core.Date{Time: d.Time.AddDate(1, 0, 0)}
	}
}

// TimeSeries buckets the income and expense splits over [start, end]
// on one shared axis. Every bucket of the axis is present and carries
// both sums, zero-filled where a side has no rows, so the two series
// are always aligned. Expense rows are expected sign-flipped positive
// as produced by SplitIncomeExpense.
func TimeSeries(income, expense []core.Transaction, start, end core.Date) []core.Bucket {
	if start.After(end) {
		return nil
	}
	g := GranularityFor(start, end)

	first := bucketStart(start, g)
	last := bucketStart(end, g)

	var buckets []core.Bucket
	index := make(map[time.Time]int)
	for d := first; !d.After(last); d = g.next(d) {
		index[d.Time] = len(buckets)
		buckets = append(buckets, core.Bucket{Start: d})
	}

	for _, tx := range income {
		if i, ok := index[bucketStart(tx.Date, g).Time]; ok {
			buckets[i].Income += tx.Amount
		}
	}
	for _, tx := range expense {
		if i, ok := index[bucketStart(tx.Date, g).Time]; ok {
			buckets[i].Expense += tx.Amount
		}
	}
	return buckets
}
