package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1000", 1000, true},
		{"-300", -300, true},
		{"0", 0, true},
		{" 1500 ", 1500, true},
		{"1,234", 1234, true},
		{"-1,234,567", -1234567, true},
		{"1234.0", 1234, true},
		{"-12.9", -12, true}, // truncation toward zero
		{"", 0, false},
		{"abc", 0, false},
		{"12a", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024/01/31", true},
		{"2024-01-31", true},
		{" 2024/02/01 ", true},
		{"2024/13/01", false},
		{"31/01/2024", false},
		{"", false},
		{"not a date", false},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q expected date, got error %v", tc.in, err)
			}
			if got.IsZero() {
				t.Fatalf("%q parsed to zero date", tc.in)
			}
		} else if err == nil {
			t.Fatalf("%q expected error, got %v", tc.in, got)
		}
	}
}

func TestNewDateRangeRejectsReversed(t *testing.T) {
	_, err := NewDateRange(NewDate(2024, 2, 1), NewDate(2024, 1, 1))
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if _, err := NewDateRange(NewDate(2024, 1, 1), NewDate(2024, 1, 1)); err != nil {
		t.Fatalf("single-day range should be valid, got %v", err)
	}
}

func TestFilterApply(t *testing.T) {
	txs := []Transaction{
		{PeriodTag: "2024-01-01_2024-01-31", Date: NewDate(2024, 1, 10), Amount: 1000},
		{PeriodTag: "2024-01-01_2024-01-31", Date: NewDate(2024, 1, 20), Amount: -300},
		{PeriodTag: "2024-02-01_2024-02-29", Date: NewDate(2024, 2, 5), Amount: -200},
	}

	t.Run("period match", func(t *testing.T) {
		got, err := Filter{Period: "2024-01-01_2024-01-31"}.Apply(txs)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(got))
		}
	})

	t.Run("all periods sentinel", func(t *testing.T) {
		got, err := Filter{Period: PeriodAll}.Apply(txs)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(got))
		}
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		r := DateRange{Start: NewDate(2024, 1, 10), End: NewDate(2024, 2, 5)}
		got, err := Filter{Range: &r}.Apply(txs)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 {
			t.Fatalf("bounds should be included, got %d rows", len(got))
		}
	})

	t.Run("conjunctive filters", func(t *testing.T) {
		r := DateRange{Start: NewDate(2024, 1, 15), End: NewDate(2024, 2, 28)}
		got, err := Filter{Period: "2024-01-01_2024-01-31", Range: &r}.Apply(txs)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Amount != -300 {
			t.Fatalf("expected only the january expense, got %v", got)
		}
	})

	t.Run("reversed range is a validation error", func(t *testing.T) {
		r := DateRange{Start: NewDate(2024, 3, 1), End: NewDate(2024, 1, 1)}
		_, err := Filter{Range: &r}.Apply(txs)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		got, err := Filter{}.Apply(txs)
		if err != nil {
			t.Fatal(err)
		}
		for i := range got {
			if got[i].Date != txs[i].Date {
				t.Fatalf("row order changed at %d", i)
			}
		}
	})
}
