package core

// Totals is the income/expense/balance summary for a filtered view.
// Expense is a positive magnitude; Balance = Income - Expense.
type Totals struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// CategoryAmount is one entry of a category breakdown.
type CategoryAmount struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// Bucket is one time-series point. Start is the first day of the
// bucket; both sums are always present, zero when the bucket holds no
// rows on that side.
type Bucket struct {
	Start   Date  `json:"bucket_start"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}
