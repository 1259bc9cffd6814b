// Package core holds the domain types of the consolidated ledger:
// transactions, calendar dates, user filters and aggregation views.
package core

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
}

// ParseDate parses the source system's date formats (slash-separated
// in the exports, dash-separated in the canonical ledger).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t.UTC()}, nil
		}
	}
	return Date{}, ErrInvalidDate
}

// ParseAmount converts a source amount cell to whole yen.
//
// The export writes signed integers ("-1234"), occasionally with
// thousands separators. Decimal values are accepted
// and truncated toward zero. Anything non-numeric is an error; the
// caller drops the row rather than substituting zero.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	return int64(math.Trunc(f)), nil
}
