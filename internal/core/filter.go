package core

// PeriodAll is the sentinel that disables period-tag filtering.
const PeriodAll = "all"

// DateRange is an inclusive [Start, End] calendar interval.
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange builds a range, rejecting start > end up front so a
// reversed interval surfaces as an error instead of an empty result.
func NewDateRange(start, end Date) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether d falls inside the range, bounds included.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Filter is the user-selected view filter. Period and Range combine
// conjunctively; PeriodAll and a nil Range each pass everything.
type Filter struct {
	Period string
	Range  *DateRange
}

// Apply returns the transactions matching the filter, preserving
// input order. A reversed date range is a validation error and no
// partial result is produced.
func (f Filter) Apply(txs []Transaction) ([]Transaction, error) {
	if f.Range != nil && f.Range.Start.After(f.Range.End) {
		return nil, ErrInvalidDateRange
	}
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Period != "" && f.Period != PeriodAll && tx.PeriodTag != f.Period {
			continue
		}
		if f.Range != nil && !f.Range.Contains(tx.Date) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}
