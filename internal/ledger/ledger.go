// Package ledger builds, caches and filters the canonical
// consolidated ledger: one UTF-8 CSV whose header starts with
// period_tag, rebuilt wholesale from the source exports and reused
// from disk while its schema marker is intact.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/clshinji/mf-data-viewer/internal/ingest"
)

// Ledger is the consolidated table: a fixed column set and rows in
// batch-then-row insertion order. Order is not chronological;
// chronological views are derived downstream.
type Ledger struct {
	Columns []string
	Rows    [][]string
}

// HasColumn reports whether name is part of the ledger schema.
func (l *Ledger) HasColumn(name string) bool {
	return l.columnIndex(name) >= 0
}

func (l *Ledger) columnIndex(name string) int {
	for i, c := range l.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// cell returns the named column of a row, or "" when absent.
func (l *Ledger) cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ReadFile loads a canonical ledger CSV. A missing, empty or
// unparsable file is an error; the caller treats any error as a cache
// miss and rebuilds.
func ReadFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, errors.New("empty ledger file")
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return &Ledger{Columns: header, Rows: records[1:]}, nil
}

// WriteFile persists the ledger atomically: the CSV is written to a
// temp file in the target directory and renamed over the destination,
// so readers never observe a partial file.
func WriteFile(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(l.Columns); err != nil {
		tmp.Close()
		return fmt.Errorf("write ledger header: %w", err)
	}
	if err := w.WriteAll(l.Rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write ledger rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace ledger %s: %w", path, err)
	}
	return nil
}

// schemaValid is the cache-validity check on a loaded ledger: the
// period_tag marker column must exist and there must be data rows.
func schemaValid(l *Ledger) bool {
	return l.HasColumn(ingest.ColPeriodTag) && len(l.Rows) > 0
}
