package core

import (
	"errors"
	"time"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("invalid date range: start must not be after end")
)

// PeriodUnknown tags transactions whose source file carried no
// date-range token in its name.
const PeriodUnknown = "unknown"

type (
	// Date is a calendar date; the time-of-day part is always
	// midnight UTC.
	Date struct {
		time.Time
	}

	// Transaction is one row of the canonical ledger after type
	// coercion. Amount is in whole yen, positive for income and
	// negative for expense.
	Transaction struct {
		PeriodTag   string `json:"period_tag"`
		Date        Date   `json:"date"`
		Description string `json:"description"`
		Amount      int64  `json:"amount"`
		Major       string `json:"major_category"`
		Minor       string `json:"minor_category"`
		Accounted   bool   `json:"is_accounted"`
		Transfer    bool   `json:"is_transfer"`
	}
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month (1-12).
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Equal reports calendar equality.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time.Format("2006-01-02")
}

// MarshalJSON renders the date as a plain "YYYY-MM-DD" string so any
// consumer gets a primitive value rather than an RFC 3339 timestamp.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return ErrInvalidDate
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
